package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/service"
	"github.com/vibe-gaming/registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	profilePictureField = "profile_picture"
	// multipartOverhead leaves room for the text fields and part headers.
	multipartOverhead = 1 << 20

	registeredMessage      = "Registration successful! Please check your email to verify your account."
	emailVerifiedMessage   = "Email verified successfully!"
	alreadyVerifiedMessage = "Email already verified"
)

func (h *Handler) initUsersRoutes(api gin.IRouter) {
	api.POST("/register", h.register)
	api.GET("/verify-email", h.verifyEmail)
}

type registerRequest struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth"`
	CountryCode string `form:"country_code" json:"country_code"`
	PhoneNumber string `form:"phone_number" json:"phone_number"`
}

type registerResponse struct {
	Success   bool   `json:"success"`
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
} // @name RegisterResponse

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name MessageResponse

// @Summary Register
// @Tags Users
// @Description Create an account and send an email verification link
// @ModuleID register
// @Accept  multipart/form-data
// @Produce  json
// @Param name formData string true "Full name"
// @Param email formData string true "Email address"
// @Param date_of_birth formData string true "Date of birth, YYYY-MM-DD"
// @Param country_code formData string true "Phone country code, e.g. +1"
// @Param phone_number formData string true "Phone number, digits only"
// @Param profile_picture formData file false "JPEG, PNG or GIF picture"
// @Success 201 {object} registerResponse
// @Failure 400 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.Registration.MaxUploadBytes+multipartOverhead)

	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		h.bindErrorResponse(c, err)
		return
	}

	upload, err := h.readProfilePicture(c)
	if err != nil {
		h.bindErrorResponse(c, err)
		return
	}

	res, err := h.services.Users.Register(c.Request.Context(), domain.RegistrationForm{
		Name:        req.Name,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		CountryCode: req.CountryCode,
		PhoneNumber: req.PhoneNumber,
	}, upload)
	if err != nil {
		var verr domain.ValidationErrors
		switch {
		case errors.As(err, &verr):
			validationErrorResponse(c, verr)
		case errors.Is(err, service.ErrInvalidDateFormat):
			errorResponse(c, http.StatusBadRequest, InvalidDateFormatCode)
		case errors.Is(err, service.ErrUserAlreadyExist):
			errorResponse(c, http.StatusConflict, UserAlreadyExistsCode)
		case errors.Is(err, service.ErrInvalidFileType):
			errorResponse(c, http.StatusBadRequest, InvalidFileTypeCode)
		case errors.Is(err, service.ErrFileTooLarge):
			errorResponse(c, http.StatusBadRequest, FileTooLargeCode)
		default:
			logger.Error("register user failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, InternalErrorCode)
		}
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Success:   true,
		UserID:    res.UserID,
		Message:   registeredMessage,
		EmailSent: res.EmailSent,
	})
}

// @Summary Verify email
// @Tags Users
// @Description Consume an email verification token
// @ModuleID verifyEmail
// @Produce  json
// @Param token query string true "Verification token"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /verify-email [get]
func (h *Handler) verifyEmail(c *gin.Context) {
	status, err := h.services.Users.VerifyEmail(c.Request.Context(), c.Query("token"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrTokenExpired) {
			errorResponse(c, http.StatusBadRequest, InvalidTokenCode)
			return
		}
		logger.Error("verify email failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, InternalErrorCode)
		return
	}

	message := emailVerifiedMessage
	if status == domain.EmailAlreadyVerified {
		message = alreadyVerifiedMessage
	}

	c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: message,
	})
}

// readProfilePicture returns nil when no file was attached.
func (h *Handler) readProfilePicture(c *gin.Context) (*domain.Upload, error) {
	header, err := c.FormFile(profilePictureField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	if header.Filename == "" && header.Size == 0 {
		return nil, nil
	}

	data, err := readFileHeader(header, h.config.Registration.MaxUploadBytes+1)
	if err != nil {
		return nil, err
	}

	return &domain.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// readFileHeader reads at most limit bytes, enough to detect oversized files.
func readFileHeader(header *multipart.FileHeader, limit int64) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, limit))
}

func (h *Handler) bindErrorResponse(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		errorResponse(c, http.StatusBadRequest, FileTooLargeCode)
		return
	}

	logger.Debug("bind register request failed", zap.Error(err))
	errorResponse(c, http.StatusBadRequest, InvalidRequestCode)
}
