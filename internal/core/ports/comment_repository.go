package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, window domain.PageWindow) ([]*domain.Comment, error)
	ListByAuthor(ctx context.Context, authorID string, window domain.PageWindow) ([]*domain.Comment, error)
	// DeleteByPost removes every comment attached to postID and reports how many.
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}
