package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"gymplan/internal/model"
)

func TestMongoProfileRepository_Upsert_DuplicateKeyRace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("retries once when the insert loses the race", func(mt *mtest.T) {
		accountID := uuid.New()
		profileID := uuid.New()

		// Two concurrent first saves both take the insert path; the loser's
		// findAndModify hits the unique account_id index. On retry the
		// document exists and the update succeeds.
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Name:    "DuplicateKey",
				Message: "E11000 duplicate key error collection: gymplan.profiles index: account_id",
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: profileID.String()},
				{Key: "account_id", Value: accountID.String()},
				{Key: "name", Value: "Alice"},
				{Key: "age", Value: 30},
				{Key: "weight", Value: 65.0},
				{Key: "dietary_preference", Value: model.DietVeg},
				{Key: "target_body_type", Value: "lean"},
				{Key: "created_at", Value: int64(1700000000)},
				{Key: "updated_at", Value: int64(1700000000)},
			}}),
		)

		repo := &mongoProfileRepository{coll: mt.Coll}
		got, err := repo.Upsert(context.Background(), &model.Profile{
			AccountID:         accountID,
			Name:              "Alice",
			Age:               30,
			Weight:            65,
			DietaryPreference: model.DietVeg,
			TargetBodyType:    "lean",
		})
		require.NoError(t, err)
		assert.Equal(t, profileID, got.ID)
		assert.Equal(t, accountID, got.AccountID)
		assert.Equal(t, "Alice", got.Name)
	})

	mt.Run("other command errors surface", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on gymplan to execute command",
		}))

		repo := &mongoProfileRepository{coll: mt.Coll}
		_, err := repo.Upsert(context.Background(), &model.Profile{AccountID: uuid.New()})
		assert.Error(t, err)
	})
}
