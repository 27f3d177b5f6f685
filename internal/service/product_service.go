package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/domain"
)

type ProductService struct {
	products ProductRepository
	logger   *zap.Logger
}

func NewProductService(products ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Images:       req.Images,
		Stock:        req.Stock,
		SKU:          req.SKU,
		Dimensions:   req.Dimensions,
		DeliveryInfo: req.DeliveryInfo,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.DeliveryInfo.AvailableZipCodes == nil {
		product.DeliveryInfo.AvailableZipCodes = []string{}
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to save product",
			zap.String("product_id", product.ID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created successfully",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.Int("initial_stock", product.Stock))

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.products.Get(ctx, productID)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	product, err := s.products.Update(ctx, productID, upd)
	if err != nil {
		s.logger.Error("Failed to update product",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product updated", zap.String("product_id", productID))
	return product, nil
}

// DeleteProduct does not check for cart items or orders still referencing the
// product; readers of dangling references get a not-found on the next fetch.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		s.logger.Error("Failed to delete product",
			zap.String("product_id", productID),
			zap.Error(err))
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", productID))
	return nil
}
