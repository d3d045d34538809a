package v1

import (
	"context"

	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/service"

	"github.com/stretchr/testify/mock"
)

type usersMock struct {
	mock.Mock
}

func (m *usersMock) Register(ctx context.Context, form domain.RegistrationForm, upload *domain.Upload) (*domain.RegistrationResult, error) {
	args := m.Called(ctx, form, upload)
	res, _ := args.Get(0).(*domain.RegistrationResult)
	return res, args.Error(1)
}

func (m *usersMock) VerifyEmail(ctx context.Context, verificationToken string) (domain.EmailVerificationStatus, error) {
	args := m.Called(ctx, verificationToken)
	return args.Get(0).(domain.EmailVerificationStatus), args.Error(1)
}

type countriesStub struct{}

func (countriesStub) GetAll(context.Context) []domain.CountryCode {
	return domain.CountryCodes()
}

type healthStub struct {
	report service.HealthReport
}

func (h healthStub) Check(context.Context) service.HealthReport {
	return h.report
}
