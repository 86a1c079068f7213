package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/usecase"
)

type CredentialsHandler struct {
	usecase usecase.CredentialsUsecase
	logger  *zap.Logger
}

func NewCredentialsHandler(credentialsUsecase usecase.CredentialsUsecase, logger *zap.Logger) *CredentialsHandler {
	return &CredentialsHandler{usecase: credentialsUsecase, logger: logger}
}

type encryptCredentialsRequest struct {
	Credentials map[string]string `json:"credentials" binding:"required"`
}

// EncryptCredentials handles POST /api/v1/admin/credentials/encrypt.
// Admin auth is enforced by middleware on this route group.
func (h *CredentialsHandler) EncryptCredentials(c *gin.Context) {
	var req encryptCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	encrypted, err := h.usecase.EncryptCredentials(req.Credentials)
	if err != nil {
		h.logger.Error("credential encryption failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to encrypt credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "encrypted": encrypted})
}
