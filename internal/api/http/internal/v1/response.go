package v1

import (
	"fmt"
	"net/http"

	"github.com/vibe-gaming/registration/internal/domain"

	"github.com/gin-gonic/gin"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func validationErrorResponse(c *gin.Context, verr domain.ValidationErrors) {
	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field, msgForTag(ferr.Tag, ferr.Param)}
	}
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
	}
	response.Errors = out
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "number":
		return "This field must contain digits only"
	case "min":
		return fmt.Sprintf("Minimum length is %v characters", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v characters", value)
	case "countrycode":
		return "Country code must be a plus sign followed by 1 to 4 digits"
	case "adult":
		return fmt.Sprintf("You must be at least %v years old", value)
	}
	return tag
}
