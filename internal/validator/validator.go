package validator

import (
	"ctchen222/tictactoe-solo/internal/session"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "direction" accepts the names session.ParseDirection understands.
	if err := validate.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := session.ParseDirection(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
