package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var countryCodePattern = regexp.MustCompile(`^\+[0-9]{1,4}$`)

// New returns a validator with the custom tags used by the signup form.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	register(v)
	return v
}

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("countrycode", countryCodeValidator)
	if err != nil {
		log.Fatal("register countrycode validator failed")
	}
}

// countryCodeValidator accepts a plus sign followed by one to four ASCII digits.
var countryCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return countryCodePattern.MatchString(fl.Field().String())
}
