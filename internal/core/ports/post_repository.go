package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. List methods
// return posts ordered by descending id, restricted to the given window.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// Delete removes the post and returns it, or domain.ErrPostNotFound.
	Delete(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, window domain.PageWindow) ([]*domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string, window domain.PageWindow) ([]*domain.Post, error)
}

// PostCache is a read-through cache in front of PostRepository.FindByID.
type PostCache interface {
	Get(ctx context.Context, id string) (*domain.Post, bool, error)
	Set(ctx context.Context, p *domain.Post) error
	Invalidate(ctx context.Context, id string) error
}
