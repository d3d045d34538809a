package v1

import (
	"net/http"

	"github.com/vibe-gaming/registration/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCountriesRoutes(api gin.IRouter) {
	api.GET("/country-codes", h.getCountryCodes)
}

type countryCodesResponse struct {
	Success bool                 `json:"success"`
	Data    []domain.CountryCode `json:"data"`
} // @name CountryCodesResponse

// @Summary Get country codes
// @Tags Countries
// @Description Phone country codes offered by the signup form
// @ModuleID getCountryCodes
// @Produce  json
// @Success 200 {object} countryCodesResponse
// @Router /country-codes [get]
func (h *Handler) getCountryCodes(c *gin.Context) {
	c.JSON(http.StatusOK, countryCodesResponse{
		Success: true,
		Data:    h.services.Countries.GetAll(c.Request.Context()),
	})
}
