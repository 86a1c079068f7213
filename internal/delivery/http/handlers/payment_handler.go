package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/usecase"
)

type PaymentHandler struct {
	usecase usecase.PaymentUsecase
	logger  *zap.Logger
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: paymentUsecase, logger: logger}
}

type initPaymentRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	ProviderID string `json:"provider_id" binding:"required"`
}

// InitPayment handles POST /api/v1/payments/:gateway
func (h *PaymentHandler) InitPayment(c *gin.Context) {
	providerType := domain.ProviderType(c.Param("gateway"))

	var req initPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.usecase.InitiatePayment(c.Request.Context(), providerType, req.OrderID, req.ProviderID)
	if err != nil {
		h.respondInitError(c, providerType, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gatewayUrl": result.RedirectURL})
}

func (h *PaymentHandler) respondInitError(c *gin.Context, providerType domain.ProviderType, err error) {
	var gatewayErr *domain.GatewayError

	switch {
	case errors.Is(err, domain.ErrProviderNotConfigured):
		// Not fatal for the shopper: the storefront falls back to the
		// manual payment flow on this message.
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "Payment gateway is not configured. Please use manual payment.",
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
	case errors.As(err, &gatewayErr):
		h.logger.Error("gateway rejected payment initiation",
			zap.String("gateway", string(providerType)), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": gatewayErr.Error()})
	default:
		h.logger.Error("payment initiation failed",
			zap.String("gateway", string(providerType)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to initiate payment"})
	}
}

// Callback handles GET and POST /api/v1/payments/:gateway/callback for
// return redirects and IPN deliveries alike. The response is always a 302
// to the storefront.
func (h *PaymentHandler) Callback(c *gin.Context) {
	providerType := domain.ProviderType(c.Param("gateway"))

	params, rawPayload := collectCallbackParams(c)
	action := params["action"]
	if action == "" {
		action = "success"
	}

	redirect := h.usecase.HandleCallback(c.Request.Context(), providerType, action, params, rawPayload)
	c.Redirect(http.StatusFound, redirect)
}

// collectCallbackParams merges query and form parameters; gateways differ
// on where they put callback fields. The raw body is preserved for audit.
func collectCallbackParams(c *gin.Context) (map[string]string, string) {
	params := make(map[string]string)

	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	var rawPayload string
	if c.Request.Method == http.MethodPost {
		body, err := io.ReadAll(c.Request.Body)
		if err == nil {
			rawPayload = string(body)
			c.Request.Body = io.NopCloser(strings.NewReader(rawPayload))
		}
		contentType := c.ContentType()
		switch {
		case strings.Contains(contentType, "application/json"):
			var body map[string]any
			if err := json.Unmarshal([]byte(rawPayload), &body); err == nil {
				for key, value := range body {
					switch v := value.(type) {
					case string:
						params[key] = v
					case float64:
						params[key] = strconv.FormatFloat(v, 'f', -1, 64)
					case bool:
						params[key] = strconv.FormatBool(v)
					}
				}
			}
		default:
			if err := c.Request.ParseForm(); err == nil {
				for key, values := range c.Request.PostForm {
					if len(values) > 0 {
						params[key] = values[0]
					}
				}
			}
		}
	}
	if rawPayload == "" {
		rawPayload = c.Request.URL.RawQuery
	}

	return params, rawPayload
}
