package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrInvalidPage = errors.New("invalid page")

// Post is a blog entry owned by a single author. Posts are never updated.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PageWindow is the skip/take pair applied to a collection ordered by
// descending id.
type PageWindow struct {
	Skip  int64
	Limit int64
}
