package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// CreateCommentInput carries the fields of a new comment.
type CreateCommentInput struct {
	PostID  string
	Content string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	CreateComment(ctx context.Context, input CreateCommentInput, token string) (*domain.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string, page int) ([]*domain.Comment, error)
	ListCommentsByUser(ctx context.Context, userID string, page int) ([]*domain.Comment, error)
}
