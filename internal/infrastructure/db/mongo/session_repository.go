package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkpress/blog-api/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository keys each session document by the owning user's _id, so
// a user never has more than one.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	UserID    primitive.ObjectID `bson:"_id"`
	Token     string             `bson:"token"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Upsert replaces the user's token in a single update. Concurrent logins for
// the same user resolve as last writer wins.
func (r *SessionRepository) Upsert(ctx context.Context, userID, token string) (*domain.Session, error) {
	oid, ok := parseID(userID)
	if !ok {
		return nil, fmt.Errorf("upsert session: invalid user id %q", userID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter, update := sessionUpsert(oid, token, now)
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("upsert session: %w", err)
	}

	return &domain.Session{ID: userID, Token: token, UpdatedAt: now}, nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSession
	if err := r.coll.FindOne(ctx, sessionByToken(token)).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &domain.Session{ID: ms.UserID.Hex(), Token: ms.Token, UpdatedAt: ms.UpdatedAt.UTC()}, nil
}

// sessionUpsert filters on the owner's _id and overwrites token and
// updated_at, so the previous token of that user stops matching.
func sessionUpsert(userID primitive.ObjectID, token string, now time.Time) (filter, update bson.M) {
	filter = bson.M{"_id": userID}
	update = bson.M{"$set": bson.M{"token": token, "updated_at": now}}
	return filter, update
}

func sessionByToken(token string) bson.M {
	return bson.M{"token": token}
}

// sessionIndexes makes tokens unique so a token maps to at most one user.
func sessionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	}}
}

func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, sessionIndexes())
	return err
}
