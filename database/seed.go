package database

import (
	"context"
	"log"
	"time"

	config "github.com/yogamaster/yoga_master/configs"
	"github.com/yogamaster/yoga_master/models"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin user from the environment when it does not
// exist yet. Skipped entirely when ADMIN_EMAIL is unset.
func (m *Mongo) SeedAdmin(ctx context.Context) {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" {
		log.Println("Admin seed skipped: ADMIN_EMAIL not configured")
		return
	}

	users := m.Collection(CollUsers)

	count, err := users.CountDocuments(ctx, bson.M{"email": adminEmail})
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Name:      config.Config("ADMIN_NAME"),
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}

	if _, err := users.InsertOne(ctx, admin); err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}
