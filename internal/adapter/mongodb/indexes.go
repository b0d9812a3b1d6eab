package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. It is
// idempotent. The unique title indexes back the duplicate-title checks
// done by the services.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	skillIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("skills_title_unique"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("skills_status"),
		},
	}
	if _, err := db.Collection(SkillsCollection).Indexes().CreateMany(ctx, skillIndexes); err != nil {
		return fmt.Errorf("create skill indexes: %w", err)
	}

	// Module titles are unique across all skills, not per skill.
	moduleIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("modules_title_unique"),
		},
		{
			Keys:    bson.D{{Key: "skill", Value: 1}},
			Options: options.Index().SetName("modules_skill"),
		},
	}
	if _, err := db.Collection(ModulesCollection).Indexes().CreateMany(ctx, moduleIndexes); err != nil {
		return fmt.Errorf("create module indexes: %w", err)
	}

	return nil
}
