package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/repository"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

type sessionManager interface {
	CreateOrAdopt(ctx context.Context, clientID, name, department, stage string) (*services.Session, error)
	LoadByName(ctx context.Context, clientID, name string) (*services.Session, error)
	Current(ctx context.Context, clientID string) (*services.Session, error)
	UpdateProfile(ctx context.Context, clientID string, in repository.UpdateProfileInput) (*models.Profile, error)
	SignOut(ctx context.Context, clientID string) error
	RememberedNames(ctx context.Context, clientID string) ([]string, error)
}

type SessionHandler struct {
	sessions sessionManager
}

func NewSessionHandler(sessions sessionManager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type createSessionRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Stage      string `json:"stage"`
}

type loadSessionRequest struct {
	Name string `json:"name"`
}

type updateProfileRequest struct {
	FullName           *string `json:"full_name"`
	AvatarURL          *string `json:"avatar_url"`
	Department         *string `json:"department"`
	Stage              *string `json:"stage"`
	LanguagePreference *string `json:"language_preference"`
}

// Create handles the create-or-adopt flow: creating with a name that already
// exists adopts the existing profile and reports success.
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.sessions.CreateOrAdopt(c.Context(), clientID(c), req.Name, req.Department, req.Stage)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, department, and stage are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) Load(c *fiber.Ctx) error {
	var req loadSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.sessions.LoadByName(c.Context(), clientID(c), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
		}
	}

	return c.JSON(session)
}

func (h *SessionHandler) Current(c *fiber.Ctx) error {
	session, err := h.sessions.Current(c.Context(), clientID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve session"})
	}
	return c.JSON(session)
}

func (h *SessionHandler) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profile, err := h.sessions.UpdateProfile(c.Context(), clientID(c), repository.UpdateProfileInput{
		FullName:           req.FullName,
		AvatarURL:          req.AvatarURL,
		Department:         req.Department,
		Stage:              req.Stage,
		LanguagePreference: req.LanguagePreference,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No active profile"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *SessionHandler) SignOut(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c.Context(), clientID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign out"})
	}
	return c.JSON(fiber.Map{"state": services.StateAnonymous})
}

func (h *SessionHandler) RememberedNames(c *fiber.Ctx) error {
	names, err := h.sessions.RememberedNames(c.Context(), clientID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list names"})
	}
	return c.JSON(fiber.Map{"names": names})
}

func clientID(c *fiber.Ctx) string {
	id, _ := c.Locals("client_id").(string)
	return id
}
