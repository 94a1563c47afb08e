package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	cache    ports.PostCache
	gate     ports.Authorizer
	pages    Paginator
	logger   zerolog.Logger
}

// NewPostService wires the post use cases. cache may be nil.
func NewPostService(
	posts ports.PostRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	cache ports.PostCache,
	gate ports.Authorizer,
	pages Paginator,
	logger zerolog.Logger,
) *PostService {
	if cache == nil {
		cache = noopCache{}
	}
	return &PostService{
		posts:    posts,
		comments: comments,
		users:    users,
		cache:    cache,
		gate:     gate,
		pages:    pages,
		logger:   logger,
	}
}

// GetPost returns the post with its author. Cache failures are logged and
// fall through to the repository.
func (s *PostService) GetPost(ctx context.Context, id string) (*ports.PostDetail, error) {
	post, hit, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("post_id", id).Msg("post cache read failed")
	}

	if !hit {
		post, err = s.posts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, post); err != nil {
			s.logger.Warn().Err(err).Str("post_id", id).Msg("post cache write failed")
		}
	}

	detail := &ports.PostDetail{Post: post}
	author, err := s.users.FindByID(ctx, post.AuthorID)
	switch {
	case err == nil:
		detail.Author = &ports.AuthorSummary{ID: author.ID, Username: author.Username}
	case errors.Is(err, domain.ErrUserNotFound):
	default:
		return nil, fmt.Errorf("get post: load author: %w", err)
	}
	return detail, nil
}

// ListPosts returns one page of all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, page int) ([]*domain.Post, error) {
	window, err := s.pages.Window(page)
	if err != nil {
		return nil, err
	}
	return s.posts.List(ctx, window)
}

// ListPostsByUser returns one page of the posts authored by userID.
func (s *PostService) ListPostsByUser(ctx context.Context, userID string, page int) ([]*domain.Post, error) {
	window, err := s.pages.Window(page)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(ctx, userID, window)
}

// CreatePost persists a post owned by the user behind token.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput, token string) (*domain.Post, error) {
	user, err := s.gate.Authorize(ctx, token, domain.OpCreatePost)
	if err != nil {
		return nil, err
	}

	tags := make([]string, len(input.Tags))
	copy(tags, input.Tags)

	created, err := s.posts.Create(ctx, &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		Tags:      tags,
		AuthorID:  user.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", user.ID).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Str("post_id", created.ID).Str("author_id", user.ID).Msg("post created")
	return created, nil
}

// DeletePost removes the post and its comments and returns the deleted id.
// Comment removal and cache invalidation failures are logged, not returned.
// If invalidation fails, GetPost may keep serving the deleted post from the
// cache until its TTL expires.
func (s *PostService) DeletePost(ctx context.Context, id, token string) (string, error) {
	user, err := s.gate.Authorize(ctx, token, domain.OpDeletePost)
	if err != nil {
		return "", err
	}

	deleted, err := s.posts.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return "", err
		}
		return "", fmt.Errorf("delete post: %w", err)
	}

	n, err := s.comments.DeleteByPost(ctx, deleted.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("post_id", deleted.ID).Msg("failed to delete post comments")
	}
	if err := s.cache.Invalidate(ctx, deleted.ID); err != nil {
		s.logger.Warn().Err(err).Str("post_id", deleted.ID).Msg("post cache invalidation failed")
	}

	s.logger.Info().
		Str("post_id", deleted.ID).
		Str("deleted_by", user.ID).
		Int64("comments_deleted", n).
		Msg("post deleted")
	return deleted.ID, nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*domain.Post, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, *domain.Post) error               { return nil }
func (noopCache) Invalidate(context.Context, string) error              { return nil }
