package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

func TestUserRepository_Save(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	sample := func() *domain.User {
		return &domain.User{
			ID:    primitive.NewObjectID().Hex(),
			Name:  "Ada",
			Email: "ada@example.com",
			Role:  domain.RoleUser,
		}
	}

	mt.Run("matched document", func(mt *mtest.T) {
		repo := &MongoUserRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		if err := repo.Save(context.Background(), sample()); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	})

	mt.Run("vanished document", func(mt *mtest.T) {
		repo := &MongoUserRepository{coll: mt.Coll}
		// A replace that matches nothing must not pass as a successful save.
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Save(context.Background(), sample()); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := &MongoUserRepository{coll: mt.Coll}

		user := sample()
		user.ID = "not-an-object-id"
		if err := repo.Save(context.Background(), user); err == nil {
			t.Fatal("expected error for malformed id")
		}
	})
}
