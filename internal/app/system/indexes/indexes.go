// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique email indexes are the atomic backstop behind the check-then-insert
flows in registration and volunteer applications: a concurrent duplicate that
slips past the existence check is rejected here with a duplicate-key error.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureVolunteerApplications(ctx, db); err != nil {
		problems = append(problems, "volunteer_applications: "+err.Error())
	}
	if err := ensureDonations(ctx, db); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureGratitude(ctx, db); err != nil {
		problems = append(problems, "gratitude_entries: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var name string
		unique := false
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			if m.Options.Unique != nil {
				unique = *m.Options.Unique
			}
		}

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An index with the same keys under a different name or options
			// already exists; surface it rather than guessing a repair.
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.String("keys", keySig(m.Keys.(bson.D))),
				zap.Bool("unique", unique),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", keySig(m.Keys.(bson.D))),
			zap.Bool("unique", unique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One account per email, globally.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
	})
}

func ensureVolunteerApplications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("volunteer_applications")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One application per email.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_volunteers_email"),
		},
		// Approved-applications listing.
		{
			Keys:    bson.D{{Key: "is_approved", Value: 1}},
			Options: options.Index().SetName("idx_volunteers_approved"),
		},
	})
}

func ensureDonations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("donations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-user totals and the donor ranking group stage.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_donations_user"),
		},
		// Category totals.
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_donations_category"),
		},
	})
}

func ensureGratitude(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("gratitude_entries")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Latest-first listings.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_gratitude_created"),
		},
	})
}
