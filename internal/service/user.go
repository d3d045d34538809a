package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/identity"
	"github.com/vibe-gaming/registration/internal/repository"
	"github.com/vibe-gaming/registration/internal/storage"
	"github.com/vibe-gaming/registration/pkg/hash"
	"github.com/vibe-gaming/registration/pkg/logger"
	"github.com/vibe-gaming/registration/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const verifyEmailPath = "/verify-email"

type userService struct {
	userRepository   repository.Users
	transactor       Transactor
	identityVerifier identity.Verifier
	uploader         storage.Uploader
	emails           Emails
	tokenGenerator   token.Generator
	tokenHasher      hash.Hasher
	validate         *validator.Validate
	clock            func() time.Time
	config           config.RegistrationConfig
}

func newUserService(userRepository repository.Users,
	transactor Transactor,
	identityVerifier identity.Verifier,
	uploader storage.Uploader,
	emails Emails,
	tokenGenerator token.Generator,
	tokenHasher hash.Hasher,
	validate *validator.Validate,
	clock func() time.Time,
	config config.RegistrationConfig,
) *userService {
	return &userService{
		userRepository:   userRepository,
		transactor:       transactor,
		identityVerifier: identityVerifier,
		uploader:         uploader,
		emails:           emails,
		tokenGenerator:   tokenGenerator,
		tokenHasher:      tokenHasher,
		validate:         validate,
		clock:            clock,
		config:           config,
	}
}

func (s *userService) Register(ctx context.Context, form domain.RegistrationForm, upload *domain.Upload) (*domain.RegistrationResult, error) {
	now := s.clock().UTC()

	registration, err := ValidateRegistration(s.validate, form, now)
	if err != nil {
		return nil, err
	}

	if upload != nil {
		if err := s.checkUpload(upload); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepository.GetByEmail(ctx, registration.Email); err == nil {
		return nil, ErrUserAlreadyExist
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	identityResult := s.verifyIdentity(ctx, registration)

	verificationToken, err := s.tokenGenerator.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate verification token failed: %w", err)
	}

	user := &domain.User{
		Name:  registration.Name,
		Email: registration.Email,
		EmailVerificationToken: sql.NullString{
			String: verificationToken,
			Valid:  true,
		},
		DateOfBirth: registration.DateOfBirth,
		CountryCode: registration.CountryCode,
		PhoneNumber: registration.PhoneNumber,
		VerificationID: sql.NullString{
			String: identityResult.VerificationID,
			Valid:  identityResult.VerificationID != "",
		},
		Verified:  identityResult.Verified,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		id, err := s.userRepository.CreateWithTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExist
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.Bool("identity_verified", user.Verified),
	)

	if upload != nil {
		s.storeProfilePicture(ctx, user.ID, upload)
	}

	emailSent := s.emails.SendUserVerificationEmail(ctx, VerificationEmailInput{
		Email: user.Email,
		Name:  user.Name,
		Link:  s.verificationLink(verificationToken),
	})

	return &domain.RegistrationResult{
		UserID:    user.ID,
		EmailSent: emailSent,
	}, nil
}

func (s *userService) VerifyEmail(ctx context.Context, verificationToken string) (domain.EmailVerificationStatus, error) {
	verificationToken = strings.TrimSpace(verificationToken)
	if verificationToken == "" {
		return "", ErrInvalidToken
	}

	tokenHash, err := s.tokenHasher.Hash(verificationToken)
	if err != nil {
		return "", fmt.Errorf("hash verification token failed: %w", err)
	}

	user, err := s.userRepository.GetByVerificationToken(ctx, verificationToken, tokenHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("get user by verification token failed: %w", err)
	}

	if user.EmailVerified {
		return domain.EmailAlreadyVerified, nil
	}

	now := s.clock().UTC()
	if now.After(user.VerificationExpiresAt(s.config.TokenTTL)) {
		logger.Info("verification token expired", zap.Int64("user_id", user.ID))
		return "", ErrTokenExpired
	}

	confirmed, err := s.userRepository.ConfirmEmail(ctx, user.ID, verificationToken, tokenHash, now)
	if err != nil {
		return "", fmt.Errorf("confirm email failed: %w", err)
	}

	if !confirmed {
		// another request consumed the token first
		current, err := s.userRepository.GetOneByID(ctx, user.ID)
		if err != nil {
			return "", fmt.Errorf("reload user failed: %w", err)
		}
		if current.EmailVerified {
			return domain.EmailAlreadyVerified, nil
		}
		return "", ErrInvalidToken
	}

	logger.Info("email verified", zap.Int64("user_id", user.ID))

	return domain.EmailVerified, nil
}

func (s *userService) checkUpload(upload *domain.Upload) error {
	mediaType, _, err := mime.ParseMediaType(upload.ContentType)
	if err != nil || !s.mimeTypeAllowed(mediaType) {
		return ErrInvalidFileType
	}

	if int64(len(upload.Data)) > s.config.MaxUploadBytes {
		return ErrFileTooLarge
	}

	return nil
}

func (s *userService) mimeTypeAllowed(mediaType string) bool {
	for _, allowed := range s.config.AllowedMimeTypes {
		if strings.EqualFold(strings.TrimSpace(allowed), mediaType) {
			return true
		}
	}
	return false
}

// verifyIdentity never blocks registration. Provider errors are recorded as
// an unverified result.
func (s *userService) verifyIdentity(ctx context.Context, registration domain.Registration) identity.Result {
	result, err := s.identityVerifier.Verify(ctx, identity.Subject{
		Email: registration.Email,
		Name:  registration.Name,
	})
	if err != nil {
		logger.Warn("identity verification failed",
			zap.String("email", registration.Email),
			zap.Error(err),
		)
		return identity.Result{}
	}
	return result
}

func (s *userService) storeProfilePicture(ctx context.Context, userID int64, upload *domain.Upload) {
	key := storage.ProfilePictureKey(userID, upload.Filename)

	pictureURL, ok := s.uploader.Upload(ctx, key, upload.Data, upload.ContentType)
	if !ok {
		return
	}

	if err := s.userRepository.UpdateProfilePictureURL(ctx, userID, pictureURL, s.clock().UTC()); err != nil {
		logger.Error("save profile picture url failed",
			zap.Int64("user_id", userID),
			zap.String("url", pictureURL),
			zap.Error(err),
		)
	}
}

func (s *userService) verificationLink(verificationToken string) string {
	return strings.TrimRight(s.config.BaseURL, "/") + verifyEmailPath + "?token=" + url.QueryEscape(verificationToken)
}
