package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect initializes the MongoDB client and returns a handle to the
// console's database. It reads the connection string from the
// environment, falling back to a local instance for development.
func Connect() (*mongo.Database, func(), error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "chic_dashboard"
	}

	return ConnectWithURI(uri, name)
}

// ConnectWithURI opens and verifies a client against any URI. The
// returned func disconnects the client; callers defer it.
func ConnectWithURI(uri, name string) (*mongo.Database, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetMaxConnIdleTime(5 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	// Ping the database to verify the connection.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, nil, err
	}

	log.Println("Database connection established successfully")

	closeFn := func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}
	return client.Database(name), closeFn, nil
}
