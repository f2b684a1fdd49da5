package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/services"
)

type chatCompleter interface {
	Complete(ctx context.Context, history []services.ChatTurn, message, language string) (string, error)
}

// ChatHandler fronts the AI completion collaborator. When the service was
// never configured (no API key at startup) the handler is constructed with a
// nil completer and answers 503 on every request.
type ChatHandler struct {
	chat chatCompleter
}

func NewChatHandler(chat chatCompleter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message  string              `json:"message"`
	History  []services.ChatTurn `json:"history"`
	Language string              `json:"language"`
}

func (h *ChatHandler) Complete(c *fiber.Ctx) error {
	if h.chat == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chat service is not configured"})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reply, err := h.chat.Complete(c.Context(), req.History, req.Message, req.Language)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message and a supported language are required"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Completion request failed"})
	}

	return c.JSON(fiber.Map{"reply": reply})
}
