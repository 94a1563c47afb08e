package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestSessionUpsert_KeysOnUserAndReplacesToken(t *testing.T) {
	user := primitive.NewObjectID()
	now := time.Now().UTC()

	filter, update := sessionUpsert(user, "new-token", now)

	if len(filter) != 1 || filter["_id"] != user {
		t.Fatalf("expected filter on _id only, got %#v", filter)
	}
	if len(update) != 1 {
		t.Fatalf("expected a single $set stage, got %#v", update)
	}
	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set document, got %#v", update["$set"])
	}
	if set["token"] != "new-token" || set["updated_at"] != now {
		t.Fatalf("unexpected $set: %#v", set)
	}
	if _, ok := set["_id"]; ok {
		t.Fatalf("$set must not touch _id")
	}
}

func TestSessionUpsert_SecondLoginTargetsSameDocument(t *testing.T) {
	user := primitive.NewObjectID()

	first, _ := sessionUpsert(user, "token-a", time.Now())
	second, _ := sessionUpsert(user, "token-b", time.Now())

	if first["_id"] != second["_id"] {
		t.Fatalf("logins of one user must upsert the same document: %v vs %v", first, second)
	}
}

func TestSessionByToken_ExactMatch(t *testing.T) {
	filter := sessionByToken("abc")
	if len(filter) != 1 || filter["token"] != "abc" {
		t.Fatalf("unexpected filter: %#v", filter)
	}
}

func requireUniqueIndex(t *testing.T, indexes []mongo.IndexModel, field string) {
	t.Helper()
	for _, idx := range indexes {
		keys, ok := idx.Keys.(bson.D)
		if !ok || len(keys) != 1 || keys[0].Key != field {
			continue
		}
		if idx.Options == nil || idx.Options.Unique == nil || !*idx.Options.Unique {
			t.Fatalf("index on %s is not unique", field)
		}
		return
	}
	t.Fatalf("no single-field index on %s", field)
}

func TestSessionIndexes_UniqueToken(t *testing.T) {
	requireUniqueIndex(t, sessionIndexes(), "token")
}

func TestUserIndexes_UniqueUsername(t *testing.T) {
	requireUniqueIndex(t, userIndexes(), "username")
}

func TestListingIndexes_DescendingID(t *testing.T) {
	cases := []struct {
		name    string
		indexes []mongo.IndexModel
		fields  []string
	}{
		{"posts", postIndexes(), []string{"author_id"}},
		{"comments", commentIndexes(), []string{"post_id", "author_id"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.indexes) != len(tc.fields) {
				t.Fatalf("expected %d indexes, got %d", len(tc.fields), len(tc.indexes))
			}
			for i, field := range tc.fields {
				keys, ok := tc.indexes[i].Keys.(bson.D)
				if !ok || len(keys) != 2 {
					t.Fatalf("unexpected keys %#v", tc.indexes[i].Keys)
				}
				if keys[0].Key != field || keys[0].Value != 1 || keys[1].Key != "_id" || keys[1].Value != -1 {
					t.Fatalf("expected {%s:1, _id:-1}, got %#v", field, keys)
				}
			}
		})
	}
}

func TestByField(t *testing.T) {
	oid := primitive.NewObjectID()

	filter, ok := byField("author_id", oid.Hex())
	if !ok || len(filter) != 1 || filter["author_id"] != oid {
		t.Fatalf("unexpected filter %#v %v", filter, ok)
	}

	if _, ok := byField("post_id", "not-an-id"); ok {
		t.Fatalf("expected malformed id to be rejected")
	}
}
