package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InternalErrorCode    = 1000
	InternalErrorMessage = "Internal server error"

	UserAlreadyExistsCode    = 1001
	UserAlreadyExistsMessage = "Email already registered"
	InvalidDateFormatCode    = 1003
	InvalidDateFormatMessage = "Invalid date format. Use YYYY-MM-DD"
	InvalidFileTypeCode      = 1004
	InvalidFileTypeMessage   = "Invalid file type. Only JPEG, PNG, and GIF allowed."
	FileTooLargeCode         = 1005
	FileTooLargeMessage      = "File too large"
	InvalidTokenCode         = 1006
	InvalidTokenMessage      = "Invalid or expired verification token"
	InvalidRequestCode       = 1007
	InvalidRequestMessage    = "Invalid request"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	Success      bool `json:"success"`
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Success      bool              `json:"success"`
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	InternalErrorCode:     InternalErrorMessage,
	UserAlreadyExistsCode: UserAlreadyExistsMessage,
	InvalidDateFormatCode: InvalidDateFormatMessage,
	InvalidFileTypeCode:   InvalidFileTypeMessage,
	FileTooLargeCode:      FileTooLargeMessage,
	InvalidTokenCode:      InvalidTokenMessage,
	InvalidRequestCode:    InvalidRequestMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	if msg, ok := errorMessages[code]; ok {
		errorStruct.ErrorCode = code
		errorStruct.ErrorMessage = msg
	}

	return errorStruct
}
