package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"saathigo/internal/memory"
	"saathigo/internal/models"
)

const (
	serviceName = "saathi-chatbot"

	emptyMessageReply = "I didn't catch that. Could you please repeat what you said?"
	noHistorySummary  = "No conversation history available for assessment."

	sessionHeader = "X-Session-Id"
)

// Generator is the slice of the generation gateway the handlers need.
type Generator interface {
	Reply(ctx context.Context, message string, recent []string) string
	Assess(ctx context.Context, history []string) models.Assessment
}

// Handler wires HTTP routes to the session registry and the generation
// gateway.
type Handler struct {
	gateway       Generator
	sessions      *memory.Registry
	contextWindow int
}

// NewHandler constructs a Handler instance.
func NewHandler(gateway Generator, sessions *memory.Registry, contextWindow int) *Handler {
	return &Handler{
		gateway:       gateway,
		sessions:      sessions,
		contextWindow: contextWindow,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/chat", h.chat)
	router.POST("/assessment", h.assessment)
	router.GET("/health", h.health)
}

type chatMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type chatRequest struct {
	SessionID string        `json:"session_id"`
	Messages  []chatMessage `json:"messages"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid messages format"})
		return
	}

	sessionID := h.sessionID(c, req.SessionID)

	message := strings.TrimSpace(req.Messages[len(req.Messages)-1].Content)
	if message == "" {
		c.JSON(http.StatusOK, gin.H{
			"response":   emptyMessageReply,
			"session_id": sessionID,
		})
		return
	}

	sessionID, buffer := h.sessions.Acquire(sessionID)
	buffer.Append(message)
	recent := buffer.Recent(h.contextWindow)

	reply := h.gateway.Reply(c.Request.Context(), message, recent)
	c.JSON(http.StatusOK, gin.H{
		"response":   reply,
		"session_id": sessionID,
	})
}

type assessmentRequest struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) assessment(c *gin.Context) {
	var req assessmentRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	sessionID := h.sessionID(c, req.SessionID)
	buffer, ok := h.sessions.Lookup(sessionID)
	if !ok || buffer.IsEmpty() {
		c.JSON(http.StatusOK, gin.H{
			"conversation_length": 0,
			"assessment":          noHistorySummary,
			"severity_level":      models.SeverityLow,
			"detected_concerns":   []string{},
			"recommendations":     []string{"Start a conversation to get personalized assessment"},
			"session_id":          sessionID,
		})
		return
	}

	assessment := h.gateway.Assess(c.Request.Context(), buffer.All())
	c.JSON(http.StatusOK, gin.H{
		"conversation_length": assessment.ConversationLength,
		"assessment":          assessment.Summary,
		"severity_level":      assessment.Severity,
		"detected_concerns":   assessment.DetectedConcerns,
		"recommendations":     assessment.Recommendations,
		"session_id":          sessionID,
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// sessionID resolves the caller's session from the request body or the
// X-Session-Id header, body taking precedence.
func (h *Handler) sessionID(c *gin.Context, fromBody string) string {
	if id := strings.TrimSpace(fromBody); id != "" {
		return id
	}
	return strings.TrimSpace(c.GetHeader(sessionHeader))
}
