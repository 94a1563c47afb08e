package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkpress/blog-api/internal/core/domain"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := parseID(oid.Hex())
	if !ok || got != oid {
		t.Fatalf("expected %s to parse, got %v %v", oid.Hex(), got, ok)
	}

	for _, bad := range []string{"", "p0001", "zzzzzzzzzzzzzzzzzzzzzzzz", oid.Hex() + "00"} {
		if _, ok := parseID(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestWindowOptions(t *testing.T) {
	opts := windowOptions(domain.PageWindow{Skip: 20, Limit: 10})

	if opts.Skip == nil || *opts.Skip != 20 {
		t.Fatalf("expected skip 20, got %v", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 10 {
		t.Fatalf("expected limit 10, got %v", opts.Limit)
	}
	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 1 || sort[0].Key != "_id" || sort[0].Value != -1 {
		t.Fatalf("expected descending _id sort, got %#v", opts.Sort)
	}
}

func TestMongoUser_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	now := time.Now()
	u := mongoUser{
		ID:           oid,
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		Roles:        []string{"creator", "admin"},
		CreatedAt:    now,
	}.toDomain()

	if u.ID != oid.Hex() || u.Username != "alice" || u.PasswordHash != "$2a$10$hash" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !u.Roles.Has(domain.RoleCreator) || !u.Roles.Has(domain.RoleAdmin) || len(u.Roles) != 2 {
		t.Fatalf("unexpected roles: %v", u.Roles)
	}
	if u.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp")
	}
}

func TestMongoPost_ToDomain_NilTags(t *testing.T) {
	p := mongoPost{ID: primitive.NewObjectID(), AuthorID: primitive.NewObjectID()}.toDomain()
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", p.Tags)
	}
}

func TestMongoComment_ToDomain(t *testing.T) {
	author, post := primitive.NewObjectID(), primitive.NewObjectID()
	c := mongoComment{ID: primitive.NewObjectID(), Content: "hi", AuthorID: author, PostID: post}.toDomain()
	if c.AuthorID != author.Hex() || c.PostID != post.Hex() || c.Content != "hi" {
		t.Fatalf("unexpected comment: %+v", c)
	}
}
