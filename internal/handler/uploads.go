package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/ingest"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

// UploadsHandler receives the CSV files and routes them through the import
// services. The uploaded file is spooled to disk and removed after
// processing, whether the import committed or not.
type UploadsHandler struct {
	stock     service.StockService
	sales     service.SalesService
	uploadDir string
}

func NewUploadsHandler(stock service.StockService, sales service.SalesService, uploadDir string) *UploadsHandler {
	return &UploadsHandler{stock: stock, sales: sales, uploadDir: uploadDir}
}

// UploadStock godoc
// @Summary Upload a stock CSV
// @Description Merges the file into the user's inventory. Existing products gain quantity, new products are created. All-or-nothing.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Stock CSV"
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/stock/upload [post]
func (h *UploadsHandler) UploadStock(c *gin.Context) {
	h.process(c, h.stock.ImportCSV)
}

// UploadSales godoc
// @Summary Upload a sales CSV
// @Description Inserts sales rows and decrements stock in one transaction. Requires existing inventory. All-or-nothing.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Sales CSV"
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/sales/upload [post]
func (h *UploadsHandler) UploadSales(c *gin.Context) {
	h.process(c, h.sales.ImportCSV)
}

func (h *UploadsHandler) process(c *gin.Context, importFn func(context.Context, uint, io.Reader) (int, error)) {
	claims := middleware.GetClaims(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no file uploaded"))
		return
	}

	path := filepath.Join(h.uploadDir, uuid.NewString()+".csv")
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to store upload"))
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("uploads: failed to remove spooled file")
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to read upload"))
		return
	}
	defer f.Close()

	imported, err := importFn(c.Request.Context(), claims.UserID, f)
	if err != nil {
		status := importStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Uint("user_id", claims.UserID).Msg("uploads: import failed")
			c.JSON(status, apierror.New("import failed"))
			return
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: imported})
}

// importStatus maps the import error taxonomy to HTTP status codes.
// User-correctable problems are 400, a concurrent upload is 409, anything
// else is a server fault.
func importStatus(err error) int {
	var notFound *service.ProductNotFoundError
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, ingest.ErrMalformedStream),
		errors.Is(err, service.ErrEmptyUpload),
		errors.Is(err, service.ErrNoInventory),
		errors.Is(err, service.ErrEmptyProductName),
		errors.As(err, &notFound),
		errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUploadInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
