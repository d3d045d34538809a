package domain

// EmailVerificationStatus is the outcome of a successful verify-email call.
type EmailVerificationStatus string

const (
	EmailVerified        EmailVerificationStatus = "verified"
	EmailAlreadyVerified EmailVerificationStatus = "already_verified"
)
