package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserSeeder handles seeding demo teacher and student accounts
type UserSeeder struct {
	db *gorm.DB
}

// NewUserSeeder creates a new user seeder
func NewUserSeeder(db *gorm.DB) *UserSeeder {
	return &UserSeeder{db: db}
}

// demoUsers are the accounts the demo environment ships with. All share the
// same password, printed when seeding runs.
var demoUsers = []struct {
	Email string
	Name  string
	Role  string
}{
	{"teacher@example.com", "Terry Teacher", shared.RoleTeacher},
	{"sam@example.com", "Sam Pupil", shared.RoleStudent},
	{"riley@example.com", "Riley Learner", shared.RoleStudent},
	{"jordan@example.com", "Jordan Counts", shared.RoleStudent},
}

const demoPassword = "Practice123!"

// SeedUsers creates the demo accounts, skipping any that already exist
func (s *UserSeeder) SeedUsers() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range demoUsers {
		var existing model.User
		if err := s.db.Where("LOWER(email) = LOWER(?)", u.Email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping", u.Email)
			continue
		}

		id, _ := uuid.NewV7()
		user := model.User{
			ID:             id.String(),
			Email:          u.Email,
			Name:           u.Name,
			Role:           u.Role,
			HashedPassword: string(hashedPassword),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Error creating user %s: %v", u.Email, err)
			return err
		}

		log.Printf("Created %s user: %s (password: %s)", u.Role, u.Email, demoPassword)
	}

	return nil
}
