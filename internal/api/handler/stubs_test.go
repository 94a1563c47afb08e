package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/middleware"
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

const (
	postID = "64b7f0c2a1b2c3d4e5f60718"
	userID = "64b7f0c2a1b2c3d4e5f60001"
)

var testToken = strings.Repeat("0f", 59)

type stubSessionService struct {
	loginFn func(ctx context.Context, username, password string) (*domain.Session, error)
}

func (s *stubSessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubSessionService) Resolve(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

type stubPostService struct {
	getFn        func(ctx context.Context, id string) (*ports.PostDetail, error)
	listFn       func(ctx context.Context, page int) ([]*domain.Post, error)
	listByUserFn func(ctx context.Context, userID string, page int) ([]*domain.Post, error)
	createFn     func(ctx context.Context, input ports.CreatePostInput, token string) (*domain.Post, error)
	deleteFn     func(ctx context.Context, id, token string) (string, error)
}

func (s *stubPostService) GetPost(ctx context.Context, id string) (*ports.PostDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) ListPosts(ctx context.Context, page int) ([]*domain.Post, error) {
	return s.listFn(ctx, page)
}

func (s *stubPostService) ListPostsByUser(ctx context.Context, userID string, page int) ([]*domain.Post, error) {
	return s.listByUserFn(ctx, userID, page)
}

func (s *stubPostService) CreatePost(ctx context.Context, input ports.CreatePostInput, token string) (*domain.Post, error) {
	return s.createFn(ctx, input, token)
}

func (s *stubPostService) DeletePost(ctx context.Context, id, token string) (string, error) {
	return s.deleteFn(ctx, id, token)
}

type stubCommentService struct {
	createFn     func(ctx context.Context, input ports.CreateCommentInput, token string) (*domain.Comment, error)
	listByPostFn func(ctx context.Context, postID string, page int) ([]*domain.Comment, error)
	listByUserFn func(ctx context.Context, userID string, page int) ([]*domain.Comment, error)
}

func (s *stubCommentService) CreateComment(ctx context.Context, input ports.CreateCommentInput, token string) (*domain.Comment, error) {
	return s.createFn(ctx, input, token)
}

func (s *stubCommentService) ListCommentsByPost(ctx context.Context, postID string, page int) ([]*domain.Comment, error) {
	return s.listByPostFn(ctx, postID, page)
}

func (s *stubCommentService) ListCommentsByUser(ctx context.Context, userID string, page int) ([]*domain.Comment, error) {
	return s.listByUserFn(ctx, userID, page)
}

type stubUserService struct {
	getFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

// newContext builds an echo context for target with the validator wired in.
// names and values set path parameters in order.
func newContext(method, target string, body io.Reader, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func withToken(c echo.Context) echo.Context {
	c.Set(middleware.ContextKeyToken, testToken)
	return c
}
