package email

import "github.com/go-playground/validator/v10"

var addressValidator = validator.New()

func IsEmailValid(email string) bool {
	return addressValidator.Var(email, "required,email") == nil
}
