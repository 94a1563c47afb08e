package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Tags      []string           `bson:"tags"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mp mongoPost) toDomain() *domain.Post {
	tags := mp.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Post{
		ID:        mp.ID.Hex(),
		Title:     mp.Title,
		Content:   mp.Content,
		Tags:      tags,
		AuthorID:  mp.AuthorID.Hex(),
		CreatedAt: mp.CreatedAt.UTC(),
	}
}

// Create inserts a new post and returns it with its assigned id.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	authorID, ok := parseID(p.AuthorID)
	if !ok {
		return nil, fmt.Errorf("insert post: invalid author id %q", p.AuthorID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		Title:     p.Title,
		Content:   p.Content,
		Tags:      p.Tags,
		AuthorID:  authorID,
		CreatedAt: p.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

// Delete removes the post and returns the deleted document.
func (r *PostRepository) Delete(ctx context.Context, id string) (*domain.Post, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("delete post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) List(ctx context.Context, w domain.PageWindow) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{}, w)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string, w domain.PageWindow) ([]*domain.Post, error) {
	filter, ok := byField("author_id", authorID)
	if !ok {
		return []*domain.Post{}, nil
	}
	return r.find(ctx, filter, w)
}

func (r *PostRepository) find(ctx context.Context, filter bson.M, w domain.PageWindow) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, windowOptions(w))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	var docs []mongoPost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list posts: decode: %w", err)
	}

	out := make([]*domain.Post, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// postIndexes back per-author listings in descending _id order.
func postIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "_id", Value: -1}}},
	}
}

func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, postIndexes())
	return err
}
