package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/model"
)

type profileDoc struct {
	ID                string  `bson:"_id"`
	AccountID         string  `bson:"account_id"`
	Name              string  `bson:"name"`
	Age               int     `bson:"age"`
	Weight            float64 `bson:"weight"`
	DietaryPreference string  `bson:"dietary_preference"`
	TargetBodyType    string  `bson:"target_body_type"`
	WorkoutPlan       string  `bson:"workout_plan,omitempty"`
	CreatedAt         int64   `bson:"created_at"`
	UpdatedAt         int64   `bson:"updated_at"`
}

type mongoProfileRepository struct {
	coll *mongo.Collection
}

// NewMongoProfileRepository builds a document-store profile repository.
func NewMongoProfileRepository(db *mongo.Database) ProfileRepository {
	return &mongoProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *mongoProfileRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*model.Profile, error) {
	var doc profileDoc
	err := r.coll.FindOne(ctx, bson.M{"account_id": accountID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return doc.toModel()
}

// Upsert is a single findOneAndUpdate with upsert: the mutable fields are
// $set, identity and created_at only on insert.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	now := time.Now()
	id := profile.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	filter := bson.M{"account_id": profile.AccountID.String()}
	update := bson.M{
		"$set": bson.M{
			"name":               profile.Name,
			"age":                profile.Age,
			"weight":             profile.Weight,
			"dietary_preference": profile.DietaryPreference,
			"target_body_type":   profile.TargetBodyType,
			"updated_at":         now.Unix(),
		},
		"$setOnInsert": bson.M{
			"_id":        id.String(),
			"created_at": now.Unix(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc profileDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// Two concurrent first saves can both take the insert path; the loser
		// hits the unique account_id index. The document exists now, so the
		// same update succeeds as a plain $set.
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

func (r *mongoProfileRepository) SetWorkoutPlan(ctx context.Context, accountID uuid.UUID, plan string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"account_id": accountID.String()},
		bson.M{"$set": bson.M{"workout_plan": plan, "updated_at": time.Now().Unix()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

func (r *mongoProfileRepository) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"account_id": accountID.String()})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d profileDoc) toModel() (*model.Profile, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	accountID, err := uuid.Parse(d.AccountID)
	if err != nil {
		return nil, err
	}
	return &model.Profile{
		ID:                id,
		AccountID:         accountID,
		Name:              d.Name,
		Age:               d.Age,
		Weight:            d.Weight,
		DietaryPreference: d.DietaryPreference,
		TargetBodyType:    d.TargetBodyType,
		WorkoutPlan:       d.WorkoutPlan,
		CreatedAt:         timeFromUnix(d.CreatedAt),
		UpdatedAt:         timeFromUnix(d.UpdatedAt),
	}, nil
}
