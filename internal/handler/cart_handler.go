package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
	"github.com/rakhigifts/shop-service/internal/service"
	"github.com/rakhigifts/shop-service/pkg/middleware"
)

type CartHandler struct {
	cartService *service.CartService
	logger      *zap.Logger
}

func NewCartHandler(cartService *service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cart,
	})
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Product ID is required", err)
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Item added to cart successfully",
		"data": gin.H{
			"id":        item.ID,
			"productId": item.ProductID,
			"quantity":  item.Quantity,
			"price":     item.Price,
		},
	})
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	itemID := c.Param("itemId")

	var req domain.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Quantity must be greater than 0", err)
		return
	}

	item, err := h.cartService.UpdateItem(c.Request.Context(), middleware.UserID(c), itemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart item updated successfully",
		"data": gin.H{
			"id":       item.ID,
			"quantity": item.Quantity,
			"price":    item.Price,
		},
	})
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	itemID := c.Param("itemId")

	if err := h.cartService.RemoveItem(c.Request.Context(), middleware.UserID(c), itemID); err != nil {
		respondServiceError(c, err, "Failed to remove item from cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart successfully",
	})
}
