package domain

import "time"

const (
	CategoryRakhi          = "rakhi"
	CategoryChocolateCombo = "chocolate-combo"
	CategoryRoliMoli       = "roli-moli"
	CategoryFlowers        = "flowers"
	CategoryHampers        = "hampers"
)

type Dimensions struct {
	Length float64 `dynamodbav:"length,omitempty" json:"length,omitempty" binding:"omitempty,gt=0"`
	Width  float64 `dynamodbav:"width,omitempty" json:"width,omitempty" binding:"omitempty,gt=0"`
	Height float64 `dynamodbav:"height,omitempty" json:"height,omitempty" binding:"omitempty,gt=0"`
}

type DeliveryInfo struct {
	EstimatedDays     int      `dynamodbav:"estimatedDays" json:"estimatedDays" binding:"required,min=1,max=30"`
	AvailableZipCodes []string `dynamodbav:"availableZipCodes" json:"availableZipCodes"`
}

type Product struct {
	ID           string       `dynamodbav:"id" json:"id"`
	Name         string       `dynamodbav:"name" json:"name"`
	Description  string       `dynamodbav:"description" json:"description"`
	Price        float64      `dynamodbav:"price" json:"price"`
	Category     string       `dynamodbav:"category" json:"category"`
	Images       []string     `dynamodbav:"images" json:"images"`
	Stock        int          `dynamodbav:"stock" json:"stock"`
	SKU          string       `dynamodbav:"sku" json:"sku"`
	Weight       float64      `dynamodbav:"weight,omitempty" json:"weight,omitempty"`
	Dimensions   *Dimensions  `dynamodbav:"dimensions,omitempty" json:"dimensions,omitempty"`
	DeliveryInfo DeliveryInfo `dynamodbav:"deliveryInfo" json:"deliveryInfo"`
	IsActive     bool         `dynamodbav:"isActive" json:"isActive"`
	CreatedAt    time.Time    `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `dynamodbav:"updatedAt" json:"updatedAt"`
}

type CreateProductRequest struct {
	Name         string       `json:"name" binding:"required,min=2,max=100"`
	Description  string       `json:"description" binding:"required,max=500"`
	Price        float64      `json:"price" binding:"required,gt=0"`
	Category     string       `json:"category" binding:"required,oneof=rakhi chocolate-combo roli-moli flowers hampers"`
	Images       []string     `json:"images"`
	Stock        int          `json:"stock" binding:"gte=0"`
	SKU          string       `json:"sku" binding:"required,max=50"`
	Weight       *float64     `json:"weight" binding:"omitempty,gt=0"`
	Dimensions   *Dimensions  `json:"dimensions"`
	IsActive     *bool        `json:"isActive"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo" binding:"required"`
}

// ProductUpdate carries a partial update; only set fields reach the store.
type ProductUpdate struct {
	Name         *string       `json:"name" binding:"omitempty,min=2,max=100"`
	Description  *string       `json:"description" binding:"omitempty,max=500"`
	Price        *float64      `json:"price" binding:"omitempty,gt=0"`
	Category     *string       `json:"category" binding:"omitempty,oneof=rakhi chocolate-combo roli-moli flowers hampers"`
	Images       *[]string     `json:"images"`
	Stock        *int          `json:"stock" binding:"omitempty,gte=0"`
	SKU          *string       `json:"sku" binding:"omitempty,max=50"`
	Weight       *float64      `json:"weight" binding:"omitempty,gt=0"`
	Dimensions   *Dimensions   `json:"dimensions"`
	IsActive     *bool         `json:"isActive"`
	DeliveryInfo *DeliveryInfo `json:"deliveryInfo"`
}
