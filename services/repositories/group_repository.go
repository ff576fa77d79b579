package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"gorm.io/gorm"
)

// GroupRepository handles group and membership database operations
type GroupRepository struct {
	BaseRepository
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *GroupRepository) CreateGroup(group *model.Group) (*model.Group, error) {
	if group.ID == "" {
		id, _ := uuid.NewV7()
		group.ID = id.String()
	}
	group.CreatedAt = time.Now()
	group.UpdatedAt = time.Now()

	if err := r.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

func (r *GroupRepository) GetGroupByID(groupID string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("id = ?", groupID).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupsByTeacherID returns a teacher's groups with members and their
// student records preloaded, newest group first.
func (r *GroupRepository) GetGroupsByTeacherID(teacherID string) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Where("teacher_id = ?", teacherID).
		Preload("Members").Preload("Members.Student").
		Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// RemoveGroup deletes a group and its memberships in one transaction.
func (r *GroupRepository) RemoveGroup(groupID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&model.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", groupID).Delete(&model.Group{}).Error
	})
}

func (r *GroupRepository) AddGroupMember(member *model.GroupMember) (*model.GroupMember, error) {
	if member.ID == "" {
		id, _ := uuid.NewV7()
		member.ID = id.String()
	}
	member.CreatedAt = time.Now()

	if err := r.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// GetGroupMember returns nil without error when no membership exists.
func (r *GroupRepository) GetGroupMember(groupID, studentID string) (*model.GroupMember, error) {
	var member model.GroupMember
	err := r.db.Where("group_id = ? AND student_id = ?", groupID, studentID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *GroupRepository) RemoveGroupMember(groupID, studentID string) error {
	return r.db.Where("group_id = ? AND student_id = ?", groupID, studentID).
		Delete(&model.GroupMember{}).Error
}
