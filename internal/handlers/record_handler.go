package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/models"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

type recordManager interface {
	Save(ctx context.Context, clientID string, in services.SaveRecordInput) (*models.HealthRecord, error)
	ListOwn(ctx context.Context, clientID string, recordType models.RecordType) ([]models.HealthRecord, error)
	Summary(ctx context.Context, clientID string, trendLen int) (*services.RecordSummary, error)
}

type RecordHandler struct {
	records recordManager
}

func NewRecordHandler(records recordManager) *RecordHandler {
	return &RecordHandler{records: records}
}

type saveRecordRequest struct {
	RecordType   string   `json:"record_type"`
	RecordValue  *float64 `json:"record_value"`
	RecordValue2 *float64 `json:"record_value_2"`
	RecordDate   *string  `json:"record_date"`
}

func (h *RecordHandler) Save(c *fiber.Ctx) error {
	var req saveRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.RecordValue == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "record_value is required"})
	}

	var recordDate time.Time
	if req.RecordDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.RecordDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "record_date must be YYYY-MM-DD"})
		}
		recordDate = parsed
	}

	record, err := h.records.Save(c.Context(), clientID(c), services.SaveRecordInput{
		RecordType:   models.RecordType(req.RecordType),
		RecordValue:  *req.RecordValue,
		RecordValue2: req.RecordValue2,
		RecordDate:   recordDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record payload"})
		case errors.Is(err, services.ErrNoProfile):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No active profile"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save record"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": record})
}

func (h *RecordHandler) List(c *fiber.Ctx) error {
	recordType := models.RecordType(c.Query("type"))

	records, err := h.records.ListOwn(c.Context(), clientID(c), recordType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown record type"})
		case errors.Is(err, services.ErrNoProfile):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No active profile"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list records"})
		}
	}

	if records == nil {
		records = []models.HealthRecord{}
	}
	return c.JSON(fiber.Map{"records": records})
}

func (h *RecordHandler) Summary(c *fiber.Ctx) error {
	trendLen := c.QueryInt("n", 10)

	summary, err := h.records.Summary(c.Context(), clientID(c), trendLen)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No active profile"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build summary"})
	}

	return c.JSON(summary)
}
