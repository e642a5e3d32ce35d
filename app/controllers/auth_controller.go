package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shivajik/profilelinks/app/models"
	"github.com/shivajik/profilelinks/app/repository"
	"github.com/shivajik/profilelinks/internal/pkg/mail"
	"github.com/shivajik/profilelinks/internal/pkg/session"
	"github.com/shivajik/profilelinks/internal/pkg/usercontext"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a tenant account. New accounts stay inactive until
// the emailed activation link is opened, and start without a subscription,
// falling back to the cheapest active plan for entitlements.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.User.GetByUsername(req.Username); err == nil {
		return jsonError(c, fiber.StatusConflict, "username_taken", "This username is already taken")
	}

	user, err := models.CreateUser(req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Name, username, email and a password of at least 6 characters are required")
	}
	if err := user.GenerateActivationToken(); err != nil {
		log.Printf("[auth] failed to generate activation token for %s: %v", req.Email, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not create account")
	}

	if err := repos.User.Create(user); err != nil {
		log.Printf("[auth] failed to create user %s: %v", req.Email, err)
		return jsonError(c, fiber.StatusConflict, "account_exists", "An account with this email or username already exists")
	}

	go func() {
		if err := mail.SendAccountActivation(user.Email, user.Name, user.ActivationToken); err != nil {
			log.Printf("[auth] failed to send activation mail to %s: %v", user.Email, err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleActivate confirms a registration via the emailed token and unlocks
// the account for login.
func HandleActivate(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Activation token is required")
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByActivationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "invalid_token", "This activation link is not valid")
		}
		log.Printf("[auth] activation lookup failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not activate account")
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := repos.User.Update(user); err != nil {
		log.Printf("[auth] failed to activate user %d: %v", user.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not activate account")
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleLogin verifies credentials and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid_request", "Invalid request body")
	}

	user, err := repository.GetGlobalRepositories().User.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnauthorized, "invalid_credentials", "Email or password is wrong")
		}
		log.Printf("[auth] login lookup failed for %s: %v", req.Email, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not log in")
	}
	if !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid_credentials", "Email or password is wrong")
	}
	switch user.Status {
	case models.STATUS_DISABLED:
		return jsonError(c, fiber.StatusForbidden, "account_disabled", "This account has been disabled")
	case models.STATUS_INACTIVE:
		return jsonError(c, fiber.StatusForbidden, "account_not_activated", "Please activate your account using the link we emailed you")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		log.Printf("[auth] failed to open session for %s: %v", req.Email, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not log in")
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Username)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.ROLE_ADMIN)
	if err := sess.Save(); err != nil {
		log.Printf("[auth] failed to save session for %s: %v", req.Email, err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "Could not log in")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repository.GetGlobalRepositories().User.Update(user); err != nil {
		log.Printf("[auth] failed to record login time for %s: %v", req.Email, err)
	}

	return c.JSON(user)
}

// HandleLogout destroys the session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("[auth] failed to destroy session: %v", err)
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
