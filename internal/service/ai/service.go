package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"saathigo/internal/config"
	"saathigo/internal/models"
)

// FallbackReply is returned whenever the generation backend is unavailable.
// A support surface must never show a raw technical error to the caller.
const FallbackReply = "I'm here to listen and support you. Could you tell me more about what's on your mind?"

// ChatModel is the slice of the eino chat model the gateway needs.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Service wraps the external generation capability: it composes prompts,
// submits them with a bounded timeout and normalizes results or failures into
// caller-safe values.
type Service struct {
	chatModel ChatModel
	timeout   time.Duration
	log       *zap.SugaredLogger
}

// NewService builds the gateway for the configured provider.
func NewService(cfg *config.Config, log *zap.SugaredLogger) (*Service, error) {
	token, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}

	var chatModel model.ToolCallingChatModel
	switch cfg.Provider {
	case "openai":
		chatModel, err = openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			APIKey:  token,
		})
	case "gemini":
		var client *genai.Client
		client, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: token,
		})
		if err != nil {
			return nil, fmt.Errorf("new gemini client: %w", err)
		}
		chatModel, err = gemini.NewChatModel(context.Background(), &gemini.Config{
			Client: client,
			Model:  cfg.Model,
		})
	case "claude":
		var baseURLPtr *string
		if cfg.BaseURL != "" {
			baseURLPtr = &cfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(context.Background(), &claude.Config{
			APIKey:    token,
			Model:     cfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: 3000,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", cfg.Provider, err)
	}

	return New(chatModel, cfg.GenerateTimeout, log), nil
}

// New builds a gateway around an already constructed chat model.
func New(chatModel ChatModel, timeout time.Duration, log *zap.SugaredLogger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		chatModel: chatModel,
		timeout:   timeout,
		log:       log,
	}
}

// Reply generates a companion response to message given the recent
// conversation context. The message must already be trimmed and non-empty.
// Generation failures never propagate; the fixed fallback is returned instead.
func (s *Service) Reply(ctx context.Context, message string, recent []string) string {
	text, err := s.generate(ctx, personaPrompt, replyPrompt(message, recent))
	if err != nil {
		s.log.Warnw("generate reply failed, using fallback", "error", err)
		return FallbackReply
	}
	// The model tends to emit markdown emphasis; callers want plain text.
	text = strings.ReplaceAll(text, "*", "")
	return strings.TrimSpace(text)
}

// Assess asks the model to classify the conversation. Transport failures and
// unparseable output both land on the fixed fallback assessment; the
// conversation length is stamped on every path.
func (s *Service) Assess(ctx context.Context, history []string) models.Assessment {
	text, err := s.generate(ctx, "", assessmentPrompt(history))
	if err != nil {
		s.log.Warnw("generate assessment failed, using fallback", "error", err)
		return fallbackAssessment(len(history))
	}

	assessment, ok := parseAssessment(text)
	if !ok {
		s.log.Warnw("assessment output was not valid JSON, using fallback")
		return fallbackAssessment(len(history))
	}
	assessment.ConversationLength = len(history)
	return assessment
}

func (s *Service) generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := make([]*schema.Message, 0, 2)
	if system != "" {
		messages = append(messages, &schema.Message{Role: schema.System, Content: system})
	}
	messages = append(messages, &schema.Message{Role: schema.User, Content: user})

	resp, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return resp.Content, nil
}
