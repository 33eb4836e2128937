// Package bootstrap seeds the console with its first admin account.
package bootstrap

import (
	"context"
	"log"
	"os"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
)

// EnsureAdmin creates an admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// on first run. It is a no-op when the account already exists or the
// variables are unset.
func EnsureAdmin(ctx context.Context, db store.Store) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	q := store.Query{Filters: []store.Filter{store.Eq("email", email)}, Limit: 1}
	var existing []models.Admin
	if err := db.Find(ctx, store.Admins, q, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return err
	}

	id, err := db.Create(ctx, store.Admins, models.Admin{
		Email:        email,
		PasswordHash: pw.Hash,
	})
	if err != nil {
		return err
	}

	log.Printf("Admin account seeded: %s (ID: %s)", email, id)
	return nil
}
