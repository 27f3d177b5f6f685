package domain

import "time"

// CartItem snapshots price, name and image at add-time; the live product is
// re-checked for stock on update and checkout.
type CartItem struct {
	ID        string    `dynamodbav:"id" json:"id"`
	UserID    string    `dynamodbav:"userId" json:"-"`
	ProductID string    `dynamodbav:"productId" json:"productId"`
	Quantity  int       `dynamodbav:"quantity" json:"quantity"`
	Price     float64   `dynamodbav:"price" json:"price"`
	Name      string    `dynamodbav:"name" json:"name"`
	Image     string    `dynamodbav:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updatedAt" json:"updatedAt"`
}

type Cart struct {
	Items  []CartItem `json:"items"`
	Totals Totals     `json:"totals"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
