package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/metrics"
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Get handles GET /v1/posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  dataResponse{data=postDetailResponse}
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	var req idRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	detail, err := h.service.GetPost(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toPostDetailResponse(detail)})
}

// List handles GET /v1/posts, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page  query     int  false  "Zero-based page number"
// @Success      200   {object}  dataResponse{data=[]postResponse}
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var req pageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	posts, err := h.service.ListPosts(c.Request().Context(), req.Page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toPostList(posts)})
}

// ListByUser handles GET /v1/users/:id/posts.
//
// @Summary      List posts written by a user
// @Tags         users
// @Produce      json
// @Param        id    path      string  true   "User id"
// @Param        page  query     int     false  "Zero-based page number"
// @Success      200   {object}  dataResponse{data=[]postResponse}
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/users/{id}/posts [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	var req idPageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	posts, err := h.service.ListPostsByUser(c.Request().Context(), req.ID, req.Page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toPostList(posts)})
}

// Create handles POST /v1/posts. Requires the creator or admin role.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post contents"
// @Success      201   {object}  dataResponse{data=postResponse}
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}, sessionToken(c))
	metrics.ObserveMutation(domain.OpCreatePost, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{Data: toPostResponse(post)})
}

// Delete handles DELETE /v1/posts/:id. Requires the admin role.
//
// @Summary      Delete a post and its comments
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  dataResponse{data=deletedResponse}
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.DeletePost(c.Request().Context(), req.ID, sessionToken(c))
	metrics.ObserveMutation(domain.OpDeletePost, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: deletedResponse{ID: id}})
}
