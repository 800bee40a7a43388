// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as the app evolves.
type DBDeps struct {
	SupplyAidMongoClient   *mongo.Client
	SupplyAidMongoDatabase *mongo.Database
}
