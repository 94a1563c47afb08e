package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/metrics"
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByPost handles GET /v1/posts/:id/comments.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        id    path      string  true   "Post id"
// @Param        page  query     int     false  "Zero-based page number"
// @Success      200   {object}  dataResponse{data=[]commentResponse}
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	var req idPageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comments, err := h.service.ListCommentsByPost(c.Request().Context(), req.ID, req.Page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toCommentList(comments)})
}

// ListByUser handles GET /v1/users/:id/comments.
//
// @Summary      List comments written by a user
// @Tags         users
// @Produce      json
// @Param        id    path      string  true   "User id"
// @Param        page  query     int     false  "Zero-based page number"
// @Success      200   {object}  dataResponse{data=[]commentResponse}
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/users/{id}/comments [get]
func (h *CommentHandler) ListByUser(c echo.Context) error {
	var req idPageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comments, err := h.service.ListCommentsByUser(c.Request().Context(), req.ID, req.Page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toCommentList(comments)})
}

// Create handles POST /v1/posts/:id/comments. Requires the commentator or
// admin role.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Post id"
// @Param        body  body      createCommentRequest  true  "Comment contents"
// @Success      201   {object}  dataResponse{data=commentResponse}
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/posts/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.CreateComment(c.Request().Context(), ports.CreateCommentInput{
		PostID:  req.PostID,
		Content: req.Content,
	}, sessionToken(c))
	metrics.ObserveMutation(domain.OpCreateComment, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{Data: toCommentResponse(comment)})
}
