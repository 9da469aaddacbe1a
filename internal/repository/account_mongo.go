package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
)

// accountDoc is the document form of model.Account. UUIDs are stored as
// their canonical string form.
type accountDoc struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

type mongoAccountRepository struct {
	coll *mongo.Collection
}

// NewMongoAccountRepository builds a document-store account repository.
func NewMongoAccountRepository(db *mongo.Database) AccountRepository {
	return &mongoAccountRepository{coll: db.Collection(accountsCollection)}
}

func (r *mongoAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	doc := accountDoc{
		ID:           account.ID.String(),
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAccountConflict
		}
		return err
	}
	return nil
}

func (r *mongoAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *mongoAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*model.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, err
	}
	return doc.toModel()
}

func (d accountDoc) toModel() (*model.Account, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &model.Account{
		ID:           id,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    timeFromUnix(d.CreatedAt),
	}, nil
}
