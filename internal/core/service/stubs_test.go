package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Password hasher
// ---------------------------------------------------------------------------

// plainHasher is a reversible stand-in for bcrypt that keeps tests fast.
type plainHasher struct {
	verifyCalls int
}

func (h *plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (h *plainHasher) Verify(plaintext, digest string) bool {
	h.verifyCalls++
	return digest == "hashed:"+plaintext
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	seq     int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(username, password string, roles ...domain.Role) *domain.User {
	u, err := r.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: "hashed:" + password,
		Roles:        roles,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%04d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	byUser    map[string]string
	upsertErr error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byUser: make(map[string]string)}
}

func (r *stubSessionRepo) Upsert(_ context.Context, userID, token string) (*domain.Session, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.byUser[userID] = token
	return &domain.Session{ID: userID, Token: token}, nil
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	for id, t := range r.byUser {
		if t == token {
			return &domain.Session{ID: id, Token: t}, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

// ---------------------------------------------------------------------------
// Posts and comments
// ---------------------------------------------------------------------------

// applyWindow mirrors the store's skip/take over an already ordered slice.
func applyWindow[T any](items []T, w domain.PageWindow) []T {
	out := []T{}
	if w.Skip >= int64(len(items)) {
		return out
	}
	end := w.Skip + w.Limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return append(out, items[w.Skip:end]...)
}

type stubPostRepo struct {
	byID      map[string]*domain.Post
	seq       int
	createErr error
	findCalls int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("p%04d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.findCalls++
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return p, nil
}

// sorted returns posts matching keep in descending id order.
func (r *stubPostRepo) sorted(keep func(*domain.Post) bool) []*domain.Post {
	var out []*domain.Post
	for _, p := range r.byID {
		if keep(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].ID, out[j].ID) > 0 })
	return out
}

func (r *stubPostRepo) List(_ context.Context, w domain.PageWindow) ([]*domain.Post, error) {
	return applyWindow(r.sorted(func(*domain.Post) bool { return true }), w), nil
}

func (r *stubPostRepo) ListByAuthor(_ context.Context, authorID string, w domain.PageWindow) ([]*domain.Post, error) {
	return applyWindow(r.sorted(func(p *domain.Post) bool { return p.AuthorID == authorID }), w), nil
}

type stubCommentRepo struct {
	byID      map[string]*domain.Comment
	seq       int
	deleteErr error
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("c%04d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) sorted(keep func(*domain.Comment) bool) []*domain.Comment {
	var out []*domain.Comment
	for _, c := range r.byID {
		if keep(c) {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].ID, out[j].ID) > 0 })
	return out
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string, w domain.PageWindow) ([]*domain.Comment, error) {
	return applyWindow(r.sorted(func(c *domain.Comment) bool { return c.PostID == postID }), w), nil
}

func (r *stubCommentRepo) ListByAuthor(_ context.Context, authorID string, w domain.PageWindow) ([]*domain.Comment, error) {
	return applyWindow(r.sorted(func(c *domain.Comment) bool { return c.AuthorID == authorID }), w), nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var n int64
	for id, c := range r.byID {
		if c.PostID == postID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type stubPostCache struct {
	entries       map[string]*domain.Post
	getErr        error
	invalidateErr error
	invalidated   []string
}

func newStubPostCache() *stubPostCache {
	return &stubPostCache{entries: make(map[string]*domain.Post)}
}

func (c *stubPostCache) Get(_ context.Context, id string) (*domain.Post, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	clone := *p
	return &clone, true, nil
}

func (c *stubPostCache) Set(_ context.Context, p *domain.Post) error {
	clone := *p
	c.entries[p.ID] = &clone
	return nil
}

func (c *stubPostCache) Invalidate(_ context.Context, id string) error {
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	users    *stubUserRepo
	sessions *stubSessionRepo
	posts    *stubPostRepo
	comments *stubCommentRepo
	cache    *stubPostCache
	hasher   *plainHasher

	sessionSvc *SessionService
	gate       *Gate
	postSvc    *PostService
	commentSvc *commentService
}

func newFixture(pageLimit int) *fixture {
	f := &fixture{
		users:    newStubUserRepo(),
		sessions: newStubSessionRepo(),
		posts:    newStubPostRepo(),
		comments: newStubCommentRepo(),
		cache:    newStubPostCache(),
		hasher:   &plainHasher{},
	}
	pages := NewPaginator(pageLimit)
	f.sessionSvc = NewSessionService(f.users, f.sessions, f.hasher, nil, discardLogger)
	f.gate = NewGate(f.sessionSvc, domain.DefaultPolicy(), discardLogger)
	f.postSvc = NewPostService(f.posts, f.comments, f.users, f.cache, f.gate, pages, discardLogger)
	f.commentSvc = NewCommentService(f.comments, f.posts, f.gate, pages, discardLogger).(*commentService)
	return f
}

// login creates a user with roles and returns a live token for it.
func (f *fixture) login(username string, roles ...domain.Role) (*domain.User, string) {
	u := f.users.add(username, "password-"+username, roles...)
	s, err := f.sessionSvc.Login(context.Background(), username, "password-"+username)
	if err != nil {
		panic(err)
	}
	return u, s.Token
}
