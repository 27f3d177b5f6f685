package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rakhigifts/shop-service/internal/domain"
)

// All responses use the uniform envelope {success, message, data, error};
// nothing above the handler layer writes to the response.

func respondBadRequest(c *gin.Context, message string, err error) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if msgs := validationMessages(err); len(msgs) > 0 {
		body["errors"] = msgs
	}
	c.JSON(http.StatusBadRequest, body)
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag()))
	}
	return msgs
}

// respondServiceError maps domain sentinels onto client-facing status codes;
// anything unrecognized is an upstream failure.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		respondWith(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrCartItemNotFound):
		respondWith(c, http.StatusNotFound, "Cart item not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		respondWith(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrBlogPostNotFound):
		respondWith(c, http.StatusNotFound, "Blog post not found")
	case errors.Is(err, domain.ErrInsufficientStock):
		respondWith(c, http.StatusBadRequest, "Insufficient stock")
	case errors.Is(err, domain.ErrInvalidQuantity):
		respondWith(c, http.StatusBadRequest, "Quantity must be greater than 0")
	case errors.Is(err, domain.ErrEmptyCart):
		respondWith(c, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, domain.ErrInvalidStatus):
		respondWith(c, http.StatusBadRequest, "Invalid order status")
	case errors.Is(err, domain.ErrInvalidSignature):
		respondWith(c, http.StatusBadRequest, "Webhook signature verification failed")
	case errors.Is(err, domain.ErrForbidden):
		respondWith(c, http.StatusForbidden, "Access denied")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fallback,
			"error":   err.Error(),
		})
	}
}

func respondWith(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
