package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/codechat/codechat/pkg/config"
	loggerpkg "github.com/codechat/codechat/pkg/logger"
)

// Fixed sampling parameters sent with every request.
const (
	requestTemperature = 0.7
	requestMaxTokens   = 1024
)

// Client issues chat completion requests against the hosted endpoint.
// Exactly one attempt is made per call; the SDK's built-in retries are
// disabled.
type Client struct {
	config  configpkg.Config
	api     openai.Client
	logger  loggerpkg.Logger
	verbose bool
}

// New validates the configuration and builds a Client. A missing token is an
// error; the caller decides whether that is fatal.
func New(cfg configpkg.Config, opts ...Option) (*Client, error) {
	cfg = configpkg.Normalize(cfg)
	deps := clientDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	if cfg.Token == "" {
		return nil, errors.New("GITHUB_TOKEN is not set; export it or add GITHUB_TOKEN=<token> to a .env file in the working directory")
	}

	loggerpkg.Debug(cfg.Verbose, deps.logger, "client init", map[string]any{
		"base_url": cfg.BaseURL,
		"model":    cfg.Model,
	})

	return &Client{
		config:  cfg,
		api:     newAPIClient(cfg),
		logger:  deps.logger,
		verbose: cfg.Verbose,
	}, nil
}

func newAPIClient(cfg configpkg.Config) openai.Client {
	return openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.Token),
		option.WithMaxRetries(0),
	)
}

// Send submits the full transcript as conversational context and returns the
// first choice's message text. Failures are returned as *RequestError.
func (c *Client) Send(ctx context.Context, transcript *Transcript) (string, error) {
	messages, err := toOpenAIMessages(transcript.Snapshot())
	if err != nil {
		return "", err
	}

	loggerpkg.Debug(c.verbose, c.logger, "sending completion request", map[string]any{
		"model":    c.config.Model,
		"messages": len(messages),
	})

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.config.Model),
		Messages:    messages,
		Temperature: openai.Float(requestTemperature),
		MaxTokens:   openai.Int(requestMaxTokens),
	})
	if err != nil {
		return "", wrapRequestError(err)
	}
	if len(completion.Choices) == 0 {
		return "", &RequestError{Kind: KindUnknown, Err: errors.New("empty completion choices")}
	}

	loggerpkg.Debug(c.verbose, c.logger, "completion received", map[string]any{
		"choices":       len(completion.Choices),
		"finish_reason": completion.Choices[0].FinishReason,
	})
	return completion.Choices[0].Message.Content, nil
}

// toOpenAIMessages converts transcript messages to SDK request params.
func toOpenAIMessages(messages []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			return nil, fmt.Errorf("unsupported message role %q", msg.Role)
		}
	}
	return out, nil
}
