package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// errorMessages is a nested map of languages to validation tags to custom error messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"oneof":    "The field '%s' must be one of %s.",
		"max":      "The field '%s' must be no longer than %s characters.",
	},
	"ko": {
		"required": "'%s' 항목은 필수입니다.",
		"email":    "'%s' 항목은 올바른 이메일 주소여야 합니다.",
		"oneof":    "'%s' 항목은 %s 중 하나여야 합니다.",
		"max":      "'%s' 항목은 최대 %s자까지 입력 가능합니다.",
	},
}

// parseMessage constructs a friendly error message based on the validation tag and custom messages.
func parseMessage(jsonTag string, e validator.FieldError, lang ...string) string {
	msgLang := "en"
	if len(lang) > 0 {
		msgLang = lang[0]
	}
	if msgs, exists := errorMessages[msgLang]; exists {
		if msg, exists := msgs[e.Tag()]; exists {
			switch strings.Count(msg, "%s") {
			case 1:
				return fmt.Sprintf(msg, jsonTag)
			case 2:
				return fmt.Sprintf(msg, jsonTag, e.Param())
			}
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", jsonTag, e.Tag())
}

// ValidateStruct validates a struct pointer and returns a map of JSON field
// names to friendly error messages. A nil map means the struct is valid.
func ValidateStruct(s any, lang ...string) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"": err.Error()}
	}

	structType := reflect.TypeOf(s)
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	validationErrors := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		field, _ := structType.FieldByName(e.StructField())
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			jsonTag = e.StructField()
		} else {
			jsonTag = strings.Split(jsonTag, ",")[0]
		}
		validationErrors[jsonTag] = parseMessage(jsonTag, e, lang...)
	}
	return validationErrors
}
