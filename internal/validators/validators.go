package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank rejects strings that are empty once surrounding whitespace is
// removed. Unlike `required` it still allows the field to be omitted when
// combined with `omitempty`.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
