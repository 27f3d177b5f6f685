package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
	"github.com/rakhigifts/shop-service/internal/service"
	"github.com/rakhigifts/shop-service/pkg/middleware"
)

const signatureHeader = "Stripe-Signature"

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	logger          *zap.Logger
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Shipping address is required", err)
		return
	}

	result, err := h.checkoutService.CreateSession(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Checkout session created successfully",
		"data":    result,
	})
}

// PaymentWebhook is unauthenticated HTTP; the gateway signature on the raw
// body is the only credential.
func (h *CheckoutHandler) PaymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondWith(c, http.StatusBadRequest, "Failed to read webhook payload")
		return
	}

	err = h.checkoutService.HandleWebhook(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		respondServiceError(c, err, "Failed to process webhook")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
