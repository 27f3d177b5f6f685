package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
	"github.com/rakhigifts/shop-service/internal/service"
)

type ContentHandler struct {
	contentService *service.ContentService
	logger         *zap.Logger
}

func NewContentHandler(contentService *service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

func (h *ContentHandler) GenerateProductDescription(c *gin.Context) {
	var req domain.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Product name and category are required", err)
		return
	}

	description, err := h.contentService.GenerateProductDescription(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate description")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"description": description,
			"generatedAt": time.Now().UTC(),
		},
	})
}

func (h *ContentHandler) GenerateGiftMessage(c *gin.Context) {
	var req domain.GenerateGiftMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Recipient is required", err)
		return
	}

	message, err := h.contentService.GenerateGiftMessage(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate gift message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message":     message,
			"generatedAt": time.Now().UTC(),
		},
	})
}

func (h *ContentHandler) GenerateBlogPost(c *gin.Context) {
	var req domain.GenerateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Topic and keywords are required", err)
		return
	}

	post, err := h.contentService.GenerateBlogPost(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate blog post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    post,
	})
}

func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	post, err := h.contentService.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}
