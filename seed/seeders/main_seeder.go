package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	// 1. Seed users first (no dependencies)
	userSeeder := NewUserSeeder(s.db)
	if err := userSeeder.SeedUsers(); err != nil {
		log.Printf("User seeding failed: %v", err)
		return err
	}

	// 2. Seed sessions (depends on users)
	sessionSeeder := NewSessionSeeder(s.db)
	if err := sessionSeeder.SeedSessions(); err != nil {
		log.Printf("Session seeding failed: %v", err)
		return err
	}

	// 3. Seed groups (depends on users)
	groupSeeder := NewGroupSeeder(s.db)
	if err := groupSeeder.SeedGroups(); err != nil {
		log.Printf("Group seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedUsersOnly seeds only users
func (s *MainSeeder) SeedUsersOnly() error {
	userSeeder := NewUserSeeder(s.db)
	return userSeeder.SeedUsers()
}

// SeedSessionsOnly seeds only sessions
func (s *MainSeeder) SeedSessionsOnly() error {
	sessionSeeder := NewSessionSeeder(s.db)
	return sessionSeeder.SeedSessions()
}

// SeedGroupsOnly seeds only groups
func (s *MainSeeder) SeedGroupsOnly() error {
	groupSeeder := NewGroupSeeder(s.db)
	return groupSeeder.SeedGroups()
}
