package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

type StoresHandler struct{ svc service.StoreService }

func NewStoresHandler(svc service.StoreService) *StoresHandler { return &StoresHandler{svc: svc} }

// Get godoc
// @Summary Get the store profile
// @Description Returns null when no profile has been saved yet.
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StoreResponse
// @Router /v1/store [get]
func (h *StoresHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to fetch store details"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save godoc
// @Summary Create or update the store profile
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.StoreRequest true "Store details"
// @Success 200 {object} dto.StoreSavedResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/store [post]
func (h *StoresHandler) Save(c *gin.Context) {
	var req dto.StoreRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	if err := h.svc.Save(c.Request.Context(), claims.UserID, req); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to save store details"))
		return
	}
	c.JSON(http.StatusOK, dto.StoreSavedResponse{Success: true, Message: "Store details saved"})
}
