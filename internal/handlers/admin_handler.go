package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/pkg/utils"
)

type statsProvider interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type profilePager interface {
	List(ctx context.Context, limit, offset int) ([]models.Profile, int, error)
}

type recordPager interface {
	List(ctx context.Context, limit, offset int) ([]models.HealthRecord, int, error)
}

// AdminHandler gates the dashboard behind a single configured credential
// pair. The password is hashed once at construction so login compares
// against a bcrypt hash rather than the raw config value.
type AdminHandler struct {
	dashboard    statsProvider
	profiles     profilePager
	records      recordPager
	username     string
	passwordHash string
	jwtSecret    string
}

func NewAdminHandler(
	dashboard statsProvider,
	profiles profilePager,
	records recordPager,
	username, password, jwtSecret string,
) (*AdminHandler, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AdminHandler{
		dashboard:    dashboard,
		profiles:     profiles,
		records:      records,
		username:     username,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
	}, nil
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues a token valid for 24 hours; the client treats the stored
// session as expired after that window.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Username != h.username || !utils.CheckPassword(req.Password, h.passwordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(h.username, "admin", h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{"token": token})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}
	return c.JSON(stats)
}

func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	profiles, total, err := h.profiles.List(c.Context(), limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list profiles"})
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	return c.JSON(fiber.Map{
		"profiles":   profiles,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *AdminHandler) ListRecords(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	records, total, err := h.records.List(c.Context(), limit, (page-1)*limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list records"})
	}
	if records == nil {
		records = []models.HealthRecord{}
	}

	return c.JSON(fiber.Map{
		"records":    records,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}
