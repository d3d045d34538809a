package service

import (
	"context"

	"github.com/vibe-gaming/registration/internal/domain"
)

type countryService struct{}

func newCountryService() *countryService {
	return &countryService{}
}

func (s *countryService) GetAll(_ context.Context) []domain.CountryCode {
	return domain.CountryCodes()
}
