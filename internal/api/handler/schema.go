package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dataResponse is the success envelope. Data is null when the resource is
// missing or the caller may not see it.
type dataResponse struct {
	Data any `json:"data"`
}

// --- Request types ---

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type pageRequest struct {
	Page int `query:"page"`
}

type idRequest struct {
	ID string `param:"id" validate:"required,mongodb"`
}

type idPageRequest struct {
	ID   string `param:"id"   validate:"required,mongodb"`
	Page int    `query:"page"`
}

type createPostRequest struct {
	Title   string   `json:"title"   validate:"required,max=120"`
	Content string   `json:"content" validate:"required,max=10000"`
	Tags    []string `json:"tags"    validate:"max=10,dive,required,max=24"`
}

type createCommentRequest struct {
	PostID  string `param:"id" json:"-" validate:"required,mongodb"`
	Content string `json:"content" validate:"required,max=2000"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// domain structs.

type sessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type postDetailResponse struct {
	postResponse
	Author *authorResponse `json:"author"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type deletedResponse struct {
	ID string `json:"id"`
}
