package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-api/internal/core/domain"
)

const commentsCollection = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	col *mongo.Collection
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(commentsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	PostID    primitive.ObjectID `bson:"post_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mc mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		Content:   mc.Content,
		AuthorID:  mc.AuthorID.Hex(),
		PostID:    mc.PostID.Hex(),
		CreatedAt: mc.CreatedAt.UTC(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	authorID, ok := parseID(c.AuthorID)
	if !ok {
		return nil, fmt.Errorf("insert comment: invalid author id %q", c.AuthorID)
	}
	postID, ok := parseID(c.PostID)
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		ID:        primitive.NewObjectID(),
		Content:   c.Content,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: c.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string, w domain.PageWindow) ([]*domain.Comment, error) {
	filter, ok := byField("post_id", postID)
	if !ok {
		return []*domain.Comment{}, nil
	}
	return r.find(ctx, filter, w)
}

func (r *CommentRepository) ListByAuthor(ctx context.Context, authorID string, w domain.PageWindow) ([]*domain.Comment, error) {
	filter, ok := byField("author_id", authorID)
	if !ok {
		return []*domain.Comment{}, nil
	}
	return r.find(ctx, filter, w)
}

// DeleteByPost removes all comments attached to postID.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	filter, ok := byField("post_id", postID)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete comments: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M, w domain.PageWindow) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, windowOptions(w))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	var docs []mongoComment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list comments: decode: %w", err)
	}

	out := make([]*domain.Comment, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// commentIndexes back per-post and per-author listings.
func commentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "_id", Value: -1}}},
	}
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, commentIndexes())
	return err
}
