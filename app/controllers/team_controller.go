package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/cache"
	"github.com/shivajik/profilelinks/internal/pkg/entitlements"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
)

type inviteTeamMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleListTeamMembers returns the tenant's team roster.
func HandleListTeamMembers(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	members, err := repository.GetGlobalRepositories().Team.GetByOwnerID(userID)
	if err != nil {
		log.Printf("[team] failed to list members for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not load team members")
	}
	return c.JSON(fiber.Map{"members": members})
}

// HandleInviteTeamMember invites a collaborator, subject to the plan limit.
// Deactivated members do not count against the limit.
func HandleInviteTeamMember(c *fiber.Ctx) error {
	ok, resp := requireEntitlement(c, entitlements.ActionAddTeamMember)
	if !ok {
		return resp
	}
	userID := usercontext.GetUserID(c)

	var req inviteTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	member := &models.TeamMember{
		OwnerID: userID,
		Email:   req.Email,
		Role:    req.Role,
		Status:  models.TeamMemberStatusInvited,
	}
	if member.Role == "" {
		member.Role = models.TeamRoleEditor
	}
	if err := member.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "A valid email and role are required")
	}

	if err := repository.GetGlobalRepositories().Team.Create(member); err != nil {
		log.Printf("[team] failed to invite member for user %d: %v", userID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not invite team member")
	}
	cache.InvalidateUsage(userID)

	return c.Status(fiber.StatusCreated).JSON(member)
}
