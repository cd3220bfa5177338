package controllers

import (
	"errors"
	"strconv"

	"little-lemon/models"
	"little-lemon/repositories"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type GroupController struct {
	userRepo *repositories.UserRepository
	group    string
}

// NewGroupController serves the roster endpoints for one staff group.
func NewGroupController(userRepo *repositories.UserRepository, group string) *GroupController {
	return &GroupController{userRepo: userRepo, group: group}
}

// ListMembers godoc
// @Summary List group members
// @Description List users in the staff group (Manager)
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /groups/manager/users [get]
func (ctrl *GroupController) ListMembers(c *gin.Context) {
	users, err := ctrl.userRepo.ListGroupMembers(c.Request.Context(), ctrl.group)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list group members"})
		return
	}

	members := []gin.H{}
	for _, u := range users {
		members = append(members, gin.H{"id": u.ID, "username": u.Username})
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Group members retrieved",
		"data":    members,
	})
}

// AddMember godoc
// @Summary Add user to group
// @Description Add a user to the staff group (Manager)
// @Tags Groups
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.GroupUserRequest true "User"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/manager/users [post]
func (ctrl *GroupController) AddMember(c *gin.Context) {
	var req models.GroupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "user_id is required"})
		return
	}

	err := ctrl.userRepo.AddToGroup(c.Request.Context(), req.UserID, ctrl.group)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add user to group"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "User added to " + ctrl.group + " group"})
}

// RemoveMember godoc
// @Summary Remove user from group
// @Description Remove a user from the staff group (Manager)
// @Tags Groups
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/manager/users/{user_id} [delete]
func (ctrl *GroupController) RemoveMember(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("user_id"))
	if userID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid user ID"})
		return
	}

	err := ctrl.userRepo.RemoveFromGroup(c.Request.Context(), userID, ctrl.group)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove user from group"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User removed from " + ctrl.group + " group"})
}
