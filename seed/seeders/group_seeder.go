package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"
	"gorm.io/gorm"
)

// GroupSeeder handles seeding a demo class group
type GroupSeeder struct {
	db *gorm.DB
}

// NewGroupSeeder creates a new group seeder
func NewGroupSeeder(db *gorm.DB) *GroupSeeder {
	return &GroupSeeder{db: db}
}

// SeedGroups puts every demo student into one class owned by the demo
// teacher
func (s *GroupSeeder) SeedGroups() error {
	var teacher model.User
	if err := s.db.Where("role = ?", shared.RoleTeacher).First(&teacher).Error; err != nil {
		log.Println("No teacher found, skipping group seeding")
		return nil
	}

	var existing model.Group
	if err := s.db.Where("teacher_id = ?", teacher.ID).First(&existing).Error; err == nil {
		log.Println("Teacher already has a group, skipping group seeding")
		return nil
	}

	groupID, _ := uuid.NewV7()
	group := model.Group{
		ID:        groupID.String(),
		Name:      "Class 4B",
		TeacherID: teacher.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.Create(&group).Error; err != nil {
		return err
	}

	var students []model.User
	if err := s.db.Where("role = ?", shared.RoleStudent).Find(&students).Error; err != nil {
		return err
	}

	for _, student := range students {
		memberID, _ := uuid.NewV7()
		member := model.GroupMember{
			ID:        memberID.String(),
			GroupID:   group.ID,
			StudentID: student.ID,
			CreatedAt: time.Now(),
		}
		if err := s.db.Create(&member).Error; err != nil {
			return err
		}
	}

	log.Printf("Created group %q with %d students", group.Name, len(students))
	return nil
}
