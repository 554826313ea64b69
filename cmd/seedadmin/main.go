// cmd/seedadmin/main.go — creates/updates the demo admin user.
// Usage: go run cmd/seedadmin/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "bistroDB"
	}
	email := "admin@bistro-boss.com"
	name := "Admin Demo"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer client.Disconnect(context.Background())

	users := client.Database(dbName).Collection("users")
	_, err = users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"name": name, "role": "admin"},
			"$setOnInsert": bson.M{"email": email, "createdAt": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("upsert error: %v", err)
	}
	fmt.Printf("✅ admin user '%s' created/updated\n", email)
}
