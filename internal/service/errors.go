package service

import "errors"

var (
	ErrUserAlreadyExist  = errors.New("user already exist")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrFileTooLarge      = errors.New("file too large")

	ErrInvalidToken = errors.New("invalid verification token")
	ErrTokenExpired = errors.New("verification token expired")
)
