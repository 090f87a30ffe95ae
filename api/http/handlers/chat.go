package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pranathimaddineni/portfolio/api/http/presenter"
	"github.com/pranathimaddineni/portfolio/pkg/chat"
)

// ChatRequest carries one conversation turn plus the client-held state: the
// cached resume text and the full history so far.
type ChatRequest struct {
	Message             string      `json:"message"`
	ResumeText          string      `json:"resumeText"`
	ConversationHistory []chat.Turn `json:"conversationHistory"`
}

type ChatHandler struct {
	svc chat.UseCase
}

func NewChatHandler(svc chat.UseCase) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat answers a question about the previously extracted resume text.
// @Summary Ask a question about the uploaded resume
// @Description Builds a bounded prompt from the resume text and the trailing conversation history, then asks the completion provider.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   request body ChatRequest true "Current message, resume text and conversation history"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}

	reply, err := h.svc.Respond(c.Context(), req.Message, req.ResumeText, req.ConversationHistory)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, fiber.Map{"response": reply})
	case errors.Is(err, chat.ErrMissingMessage):
		return presenter.Error(c, http.StatusBadRequest, "Message is required")
	case errors.Is(err, chat.ErrMissingDocument):
		return presenter.Error(c, http.StatusBadRequest, "No resume uploaded. Please upload a resume first.")
	default:
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
}
