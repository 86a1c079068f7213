package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/usecase"
)

type DocumentHandler struct {
	usecase usecase.DocumentUsecase
	logger  *zap.Logger
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{usecase: documentUsecase, logger: logger}
}

type generateDocumentRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// GenerateInvoice handles POST /api/v1/documents/invoice
func (h *DocumentHandler) GenerateInvoice(c *gin.Context) {
	h.generate(c, h.usecase.GenerateInvoice)
}

// GenerateDeliverySlip handles POST /api/v1/documents/delivery-slip
func (h *DocumentHandler) GenerateDeliverySlip(c *gin.Context) {
	h.generate(c, h.usecase.GenerateDeliverySlip)
}

func (h *DocumentHandler) generate(c *gin.Context, render func(string) (string, string, error)) {
	var req generateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	html, orderNumber, err := render(req.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		h.logger.Error("document generation failed",
			zap.String("order_id", req.OrderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "html": html, "order_number": orderNumber})
}
