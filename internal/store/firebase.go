package store

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// FirebaseTree implements Tree on top of the Firebase Realtime Database.
// The client is created once at startup and shared across requests.
type FirebaseTree struct {
	client *db.Client
}

// NewFirebaseTree connects to the Realtime Database using a service-account
// credentials file and the database endpoint URL.
func NewFirebaseTree(ctx context.Context, credFile, databaseURL string) (*FirebaseTree, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL},
		option.WithCredentialsFile(credFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("open database client: %w", err)
	}

	return &FirebaseTree{client: client}, nil
}

func (t *FirebaseTree) Get(ctx context.Context, path string, dest interface{}) error {
	if err := t.client.NewRef(path).Get(ctx, dest); err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (t *FirebaseTree) Push(ctx context.Context, path string) (string, error) {
	ref, err := t.client.NewRef(path).Push(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("push %s: %w", path, err)
	}
	return ref.Key, nil
}

// Update uses the root ref so the write map can fan out across the primary
// collection and the index collections in a single atomic request.
func (t *FirebaseTree) Update(ctx context.Context, writes map[string]interface{}) error {
	if err := t.client.NewRef("/").Update(ctx, writes); err != nil {
		return fmt.Errorf("multi-path update: %w", err)
	}
	return nil
}
