package handler

import (
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		UserID:    s.ID,
		UpdatedAt: s.UpdatedAt,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      tags,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
	}
}

func toPostDetailResponse(d *ports.PostDetail) postDetailResponse {
	resp := postDetailResponse{postResponse: toPostResponse(d.Post)}
	if d.Author != nil {
		resp.Author = &authorResponse{ID: d.Author.ID, Username: d.Author.Username}
	}
	return resp
}

// toPostList never returns nil so an empty page renders as [].
func toPostList(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentList(comments []*domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
