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

type commentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	gate     ports.Authorizer
	pages    Paginator
	log      zerolog.Logger
}

// NewCommentService returns a CommentService implementation.
func NewCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	gate ports.Authorizer,
	pages Paginator,
	log zerolog.Logger,
) ports.CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		gate:     gate,
		pages:    pages,
		log:      log,
	}
}

// CreateComment attaches a comment by the user behind token to an existing post.
func (s *commentService) CreateComment(ctx context.Context, in ports.CreateCommentInput, token string) (*domain.Comment, error) {
	user, err := s.gate.Authorize(ctx, token, domain.OpCreateComment)
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.FindByID(ctx, in.PostID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		Content:   in.Content,
		AuthorID:  user.ID,
		PostID:    in.PostID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", created.ID).
		Str("post_id", in.PostID).
		Str("author_id", user.ID).
		Msg("comment created")
	return created, nil
}

func (s *commentService) ListCommentsByPost(ctx context.Context, postID string, page int) ([]*domain.Comment, error) {
	window, err := s.pages.Window(page)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID, window)
}

func (s *commentService) ListCommentsByUser(ctx context.Context, userID string, page int) ([]*domain.Comment, error) {
	window, err := s.pages.Window(page)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByAuthor(ctx, userID, window)
}
