package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Dashboard godoc
// @Summary Dashboard analytics
// @Description Returns customer behavior, sales analysis, demographics and top-selling aggregations over the user's sales.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/analytics [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Dashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", claims.UserID).Msg("analytics: dashboard failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate analytics"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
