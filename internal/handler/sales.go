package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

type SalesHandler struct{ svc service.SalesService }

func NewSalesHandler(svc service.SalesService) *SalesHandler { return &SalesHandler{svc: svc} }

// List godoc
// @Summary List recent sales
// @Description Returns the user's most recent sales rows, newest first.
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SaleResponse
// @Router /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	recs, err := h.svc.ListRecent(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch sales"))
		return
	}
	c.JSON(http.StatusOK, recs)
}
