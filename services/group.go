package services

import (
	"errors"
	"strings"

	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/model"
	"github.com/mathfacts-fun/mathfacts_api/shared"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"
)

type GroupService struct {
	context.DefaultService

	postgresSvc *PostgresService
	statsSvc    *StatsService
}

const GROUP_SVC = "group_svc"

func (svc GroupService) Id() string {
	return GROUP_SVC
}

func (svc *GroupService) Configure(ctx *context.Context) error {
	svc.postgresSvc = ctx.Service(POSTGRES_SVC).(*PostgresService)
	svc.statsSvc = ctx.Service(STATS_SVC).(*StatsService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *GroupService) Start() error {
	return nil
}

func (svc *GroupService) CreateGroup(teacherID string, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := &model.Group{
		Name:      strings.TrimSpace(req.Name),
		TeacherID: teacherID,
	}

	created, err := svc.postgresSvc.Groups().CreateGroup(group)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	resp := toGroupResponse(created)
	return &resp, nil
}

func (svc *GroupService) GetGroups(teacherID string) (*dto.GroupListResponse, error) {
	groups, err := svc.postgresSvc.Groups().GetGroupsByTeacherID(teacherID)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	out := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, toGroupResponse(&groups[i]))
	}

	return &dto.GroupListResponse{Groups: out, Total: len(out)}, nil
}

func (svc *GroupService) DeleteGroup(teacherID, groupID string) error {
	if _, err := svc.requireOwnedGroup(teacherID, groupID); err != nil {
		return err
	}

	if err := svc.postgresSvc.Groups().RemoveGroup(groupID); err != nil {
		return svc.postgresSvc.HandleError(err)
	}
	return nil
}

// AddMember looks the student up by email, mirroring the add-student dialog.
// The error messages are shown verbatim in that dialog.
func (svc *GroupService) AddMember(teacherID, groupID string, req dto.AddGroupMemberRequest) (*dto.GroupMemberInfo, error) {
	if _, err := svc.requireOwnedGroup(teacherID, groupID); err != nil {
		return nil, err
	}

	student, err := svc.postgresSvc.Users().GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("no student found with this email")
		}
		return nil, svc.postgresSvc.HandleError(err)
	}

	if student.Role != shared.RoleStudent {
		return nil, shared.NewBadRequestError("user is not a student")
	}

	existing, err := svc.postgresSvc.Groups().GetGroupMember(groupID, student.ID)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}
	if existing != nil {
		return nil, shared.NewConflictError("student already in group")
	}

	member, err := svc.postgresSvc.Groups().AddGroupMember(&model.GroupMember{
		GroupID:   groupID,
		StudentID: student.ID,
	})
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}

	return &dto.GroupMemberInfo{
		ID:        member.ID,
		StudentID: student.ID,
		Name:      student.Name,
		Email:     student.Email,
		JoinedAt:  member.CreatedAt,
	}, nil
}

func (svc *GroupService) RemoveMember(teacherID, groupID, studentID string) error {
	if _, err := svc.requireOwnedGroup(teacherID, groupID); err != nil {
		return err
	}

	member, err := svc.postgresSvc.Groups().GetGroupMember(groupID, studentID)
	if err != nil {
		return svc.postgresSvc.HandleError(err)
	}
	if member == nil {
		return shared.NewNotFoundError("Student is not a member of this group")
	}

	if err := svc.postgresSvc.Groups().RemoveGroupMember(groupID, studentID); err != nil {
		return svc.postgresSvc.HandleError(err)
	}
	return nil
}

// GetMemberProgress returns a student's progress view, but only when the
// student belongs to one of the requesting teacher's groups.
func (svc *GroupService) GetMemberProgress(teacherID, groupID, studentID string) (*dto.StudentProgressResponse, error) {
	if _, err := svc.requireOwnedGroup(teacherID, groupID); err != nil {
		return nil, err
	}

	member, err := svc.postgresSvc.Groups().GetGroupMember(groupID, studentID)
	if err != nil {
		return nil, svc.postgresSvc.HandleError(err)
	}
	if member == nil {
		return nil, shared.NewNotFoundError("Student is not a member of this group")
	}

	return svc.statsSvc.GetStudentProgress(studentID)
}

func (svc *GroupService) requireOwnedGroup(teacherID, groupID string) (*model.Group, error) {
	group, err := svc.postgresSvc.Groups().GetGroupByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Group not found")
		}
		return nil, svc.postgresSvc.HandleError(err)
	}

	if group.TeacherID != teacherID {
		return nil, shared.NewForbiddenError("You do not own this group")
	}
	return group, nil
}

func toGroupResponse(group *model.Group) dto.GroupResponse {
	members := make([]dto.GroupMemberInfo, 0, len(group.Members))
	for _, m := range group.Members {
		members = append(members, dto.GroupMemberInfo{
			ID:        m.ID,
			StudentID: m.StudentID,
			Name:      m.Student.Name,
			Email:     m.Student.Email,
			JoinedAt:  m.CreatedAt,
		})
	}

	return dto.GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		TeacherID: group.TeacherID,
		CreatedAt: group.CreatedAt,
		Members:   members,
	}
}
