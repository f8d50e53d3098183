package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index. Email uniqueness is a store
// invariant, not an application-level check.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	Name                  string             `bson:"name"`
	Email                 string             `bson:"email"`
	PasswordHash          string             `bson:"password_hash"`
	Role                  string             `bson:"role"`
	BiometricEnabled      bool               `bson:"biometric_enabled"`
	BiometricHash         string             `bson:"biometric_hash,omitempty"`
	BiometricRegisteredAt *time.Time         `bson:"biometric_registered_at,omitempty"`
	RefreshToken          string             `bson:"refresh_token,omitempty"`
	CreatedAt             int64              `bson:"created_at"`
	UpdatedAt             int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toUserDoc(user)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoUserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("save user: bad id %q: %w", user.ID, err)
	}

	doc := toUserDoc(user)
	doc.ID = oid
	doc.UpdatedAt = time.Now().UTC().Unix()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"refresh_token": refreshToken})
}

func (r *MongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *toUser(&doc))
	}
	return users, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(&doc), nil
}

func toUserDoc(user *domain.User) mongoUser {
	return mongoUser{
		Name:                  user.Name,
		Email:                 user.Email,
		PasswordHash:          user.PasswordHash,
		Role:                  string(user.Role),
		BiometricEnabled:      user.BiometricEnabled,
		BiometricHash:         user.BiometricHash,
		BiometricRegisteredAt: user.BiometricRegisteredAt,
		RefreshToken:          user.RefreshToken,
		CreatedAt:             user.CreatedAt.Unix(),
		UpdatedAt:             user.UpdatedAt.Unix(),
	}
}

func toUser(doc *mongoUser) *domain.User {
	return &domain.User{
		ID:                    doc.ID.Hex(),
		Name:                  doc.Name,
		Email:                 doc.Email,
		PasswordHash:          doc.PasswordHash,
		Role:                  domain.Role(doc.Role),
		BiometricEnabled:      doc.BiometricEnabled,
		BiometricHash:         doc.BiometricHash,
		BiometricRegisteredAt: doc.BiometricRegisteredAt,
		RefreshToken:          doc.RefreshToken,
		CreatedAt:             unixToTime(doc.CreatedAt),
		UpdatedAt:             unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
