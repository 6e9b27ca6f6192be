package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// List godoc
// @Summary List the user's inventory
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StockItemResponse
// @Router /v1/stock [get]
func (h *StockHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	items, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch stock"))
		return
	}
	c.JSON(http.StatusOK, items)
}
