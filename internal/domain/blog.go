package domain

import "time"

// BlogPost is generated content written through to the store.
type BlogPost struct {
	Slug      string    `dynamodbav:"slug" json:"slug"`
	Title     string    `dynamodbav:"title" json:"title"`
	Content   string    `dynamodbav:"content" json:"content"`
	Keywords  []string  `dynamodbav:"keywords" json:"keywords"`
	WordCount int       `dynamodbav:"wordCount" json:"wordCount"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

type GenerateDescriptionRequest struct {
	ProductName    string   `json:"productName" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Features       []string `json:"features"`
	TargetAudience string   `json:"targetAudience"`
}

type GenerateGiftMessageRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Occasion  string `json:"occasion"`
	Tone      string `json:"tone"`
}

type GenerateBlogRequest struct {
	Topic     string   `json:"topic" binding:"required"`
	Keywords  []string `json:"keywords" binding:"required,min=1"`
	WordCount int      `json:"wordCount" binding:"omitempty,min=100,max=2000"`
}
