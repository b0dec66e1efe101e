package utils

import (
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	translator    ut.Translator
	validate      *validator.Validate
)

// InitValidator returns the shared validator with English messages
// registered. Safe for concurrent use.
func InitValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()

		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")

		_ = enTranslations.RegisterDefaultTranslations(validate, translator)
	})

	return validate
}

func GetTranslator() ut.Translator {
	InitValidator()
	return translator
}

// FormatValidationErrors turns validator errors into field -> message.
func FormatValidationErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{
			"error": err.Error(),
		}
	}

	trans := GetTranslator()
	errors := make(map[string]string, len(validationErrors))

	for _, e := range validationErrors {
		errors[e.Field()] = e.Translate(trans)
	}

	return errors
}
