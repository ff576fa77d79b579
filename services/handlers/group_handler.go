package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/mathfacts-fun/mathfacts_api/dto"
	"github.com/mathfacts-fun/mathfacts_api/shared"
)

type GroupHandler struct {
	groupSvc GroupServiceInterface
}

func NewGroupHandler(groupSvc GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupSvc: groupSvc,
	}
}

// @Summary Teacher dashboard
// @Description The teacher's groups with their members
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.GroupListResponse}
// @Router /api/v1/dashboard/teacher [get]
func (h *GroupHandler) TeacherDashboard(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)

	resp, err := h.groupSvc.GetGroups(teacherID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Create a group
// @Description Create a new student group owned by the calling teacher
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param createRequest body dto.CreateGroupRequest true "Group name"
// @Success 201 {object} shared.Response{data=dto.GroupResponse}
// @Router /api/v1/groups [post]
func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.groupSvc.CreateGroup(teacherID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Group created", resp)
}

// @Summary Delete a group
// @Description Remove a group and all its memberships
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param groupId path string true "Group ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)
	groupID := c.Params("groupId")

	if err := h.groupSvc.DeleteGroup(teacherID, groupID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Group deleted", nil)
}

// @Summary Add a student to a group
// @Description Add a student to the group by email address
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param groupId path string true "Group ID"
// @Param addRequest body dto.AddGroupMemberRequest true "Student email"
// @Success 201 {object} shared.Response{data=dto.GroupMemberInfo}
// @Router /api/v1/groups/{groupId}/members [post]
func (h *GroupHandler) AddMember(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)
	groupID := c.Params("groupId")

	var req dto.AddGroupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.groupSvc.AddMember(teacherID, groupID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Student added to group", resp)
}

// @Summary Remove a student from a group
// @Description Remove the membership; the student's sessions are untouched
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param groupId path string true "Group ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/groups/{groupId}/members/{studentId} [delete]
func (h *GroupHandler) RemoveMember(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)
	groupID := c.Params("groupId")
	studentID := c.Params("studentId")

	if err := h.groupSvc.RemoveMember(teacherID, groupID, studentID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Student removed from group", nil)
}

// @Summary Student progress
// @Description A group member's practice progress for the owning teacher
// @Tags groups
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param groupId path string true "Group ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} shared.Response{data=dto.StudentProgressResponse}
// @Router /api/v1/groups/{groupId}/members/{studentId}/progress [get]
func (h *GroupHandler) MemberProgress(c *fiber.Ctx) error {
	teacherID := c.Locals(shared.UserID).(string)
	groupID := c.Params("groupId")
	studentID := c.Params("studentId")

	resp, err := h.groupSvc.GetMemberProgress(teacherID, groupID, studentID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
