package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields of a new post.
type CreatePostInput struct {
	Title   string
	Content string
	Tags    []string
}

// AuthorSummary is the public view of a user attached to a post.
type AuthorSummary struct {
	ID       string
	Username string
}

// PostDetail is the single-post view returned by GetPost.
type PostDetail struct {
	Post   *domain.Post
	Author *AuthorSummary // nil when the author no longer exists
}

// PostService defines use-case operations for posts.
type PostService interface {
	GetPost(ctx context.Context, id string) (*PostDetail, error)
	ListPosts(ctx context.Context, page int) ([]*domain.Post, error)
	ListPostsByUser(ctx context.Context, userID string, page int) ([]*domain.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput, token string) (*domain.Post, error)
	DeletePost(ctx context.Context, id, token string) (string, error)
}
