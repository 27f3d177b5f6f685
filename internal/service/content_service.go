package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rakhigifts/shop-service/internal/ai"
	"github.com/rakhigifts/shop-service/internal/domain"
)

const defaultBlogWordCount = 500

type ContentService struct {
	chat   ai.ChatClient
	blogs  BlogRepository
	logger *zap.Logger
}

func NewContentService(chat ai.ChatClient, blogs BlogRepository, logger *zap.Logger) *ContentService {
	return &ContentService{
		chat:   chat,
		blogs:  blogs,
		logger: logger,
	}
}

func (s *ContentService) GenerateProductDescription(ctx context.Context, req domain.GenerateDescriptionRequest) (string, error) {
	features := "Standard features"
	if len(req.Features) > 0 {
		features = strings.Join(req.Features, ", ")
	}
	audience := req.TargetAudience
	if audience == "" {
		audience = "Rakhi shoppers"
	}

	prompt := fmt.Sprintf(`Create an engaging product description for: %s

Category: %s
Features: %s
Target Audience: %s

The description should be 3-4 sentences long, highlight the unique selling
points, include emotional appeal, be SEO-friendly, and mention that it is
perfect for Raksha Bandhan. Return only the description text.`,
		req.ProductName, req.Category, features, audience)

	description, err := s.chat.Complete(ctx,
		"You are an expert copywriter specializing in e-commerce product descriptions for Indian festivals.",
		prompt, 200)
	if err != nil {
		s.logger.Error("Failed to generate description",
			zap.String("product_name", req.ProductName),
			zap.Error(err))
		return "", err
	}

	return description, nil
}

func (s *ContentService) GenerateGiftMessage(ctx context.Context, req domain.GenerateGiftMessageRequest) (string, error) {
	occasion := req.Occasion
	if occasion == "" {
		occasion = "Raksha Bandhan"
	}
	tone := req.Tone
	if tone == "" {
		tone = "warm and heartfelt"
	}

	prompt := fmt.Sprintf(`Write a short gift message for %s addressed to %s.
The tone should be %s. Keep it under 40 words and return only the message.`,
		occasion, req.Recipient, tone)

	message, err := s.chat.Complete(ctx,
		"You write short, personal gift-card messages for festival gifts.",
		prompt, 100)
	if err != nil {
		s.logger.Error("Failed to generate gift message", zap.Error(err))
		return "", err
	}

	return message, nil
}

// GenerateBlogPost writes the generated content through to the store so the
// storefront can serve it without regenerating.
func (s *ContentService) GenerateBlogPost(ctx context.Context, req domain.GenerateBlogRequest) (*domain.BlogPost, error) {
	wordCount := req.WordCount
	if wordCount == 0 {
		wordCount = defaultBlogWordCount
	}

	prompt := fmt.Sprintf(`Write a comprehensive blog post about: %s

Target Keywords: %s
Target Word Count: %d words

Structure the post with an introduction, several sections, and a conclusion.
Return only the post body.`,
		req.Topic, strings.Join(req.Keywords, ", "), wordCount)

	content, err := s.chat.Complete(ctx,
		"You are a content writer for a festival gift shop blog.",
		prompt, wordCount*2)
	if err != nil {
		s.logger.Error("Failed to generate blog post",
			zap.String("topic", req.Topic),
			zap.Error(err))
		return nil, err
	}

	post := &domain.BlogPost{
		Slug:      Slugify(req.Topic),
		Title:     req.Topic,
		Content:   content,
		Keywords:  req.Keywords,
		WordCount: len(strings.Fields(content)),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.blogs.Put(ctx, post); err != nil {
		s.logger.Error("Failed to save blog post",
			zap.String("slug", post.Slug),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Blog post generated",
		zap.String("slug", post.Slug),
		zap.Int("word_count", post.WordCount))

	return post, nil
}

func (s *ContentService) GetBlogPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.blogs.Get(ctx, slug)
}

// Slugify lowercases and collapses everything outside [a-z0-9] into single
// hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
