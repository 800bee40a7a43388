// Package donorqueries provides the read-only donation report queries:
// per-user category breakdowns and the ranked all-donors report.
package donorqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryTotal is one row of a per-user donation breakdown.
type CategoryTotal struct {
	Category    string  `bson:"_id" json:"category"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// BreakdownByUser groups one user's donations by category and sums amounts.
func BreakdownByUser(ctx context.Context, db *mongo.Database, userID string) ([]CategoryTotal, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$group": bson.M{"_id": "$category", "totalAmount": bson.M{"$sum": "$amount"}}},
	}

	cur, err := db.Collection("donations").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []CategoryTotal{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Donor is one row of the ranked all-donors report.
type Donor struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
}

// RankedDonors groups all donations by donor, joins donor identity from the
// users collection, and sorts by total descending.
//
// The $unwind after the $lookup gives inner-join semantics: a donation group
// whose user_id resolves to no user is dropped from this report only. The
// user_id string is converted with $convert/onError:null so a malformed id
// behaves like a missing user instead of aborting the pipeline.
func RankedDonors(ctx context.Context, db *mongo.Database) ([]Donor, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$user_id",
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "users",
			"let": bson.M{"donorId": bson.M{"$convert": bson.M{
				"input":   "$_id",
				"to":      "objectId",
				"onError": nil,
			}}},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$donorId"}}}},
				{"$project": bson.M{"_id": 1, "name": 1, "email": 1}},
			},
			"as": "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         "$user._id",
			"name":        "$user.name",
			"email":       "$user.email",
			"totalAmount": 1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalAmount", Value: -1}}}},
	}

	cur, err := db.Collection("donations").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []Donor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
