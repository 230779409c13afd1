package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/ctxutil"
	"github.com/taibuivan/diwan/internal/platform/metrics"
)

// Completer is a chat-completion backend.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Model() string
}

// # Service Layer

// Service turns topics into poems.
type Service struct {
	completer Completer
	metrics   *metrics.Metrics
}

// NewService constructs a generation [Service]. A nil completer disables generation.
func NewService(completer Completer, recorder *metrics.Metrics) *Service {
	return &Service{completer: completer, metrics: recorder}
}

/*
Generate composes a poem for topic.

Returns:
  - Result: The generated poem and the model that wrote it
  - error: VALIDATION_ERROR for a blank topic, SERVICE_UNAVAILABLE when no model
    is configured, BAD_GATEWAY for any model failure
*/
func (service *Service) Generate(ctx context.Context, topic string) (Result, error) {
	topic = strings.TrimSpace(topic)

	if topic == "" {
		return Result{}, apperr.ValidationError(messageTopicRequired, apperr.FieldError{
			Field:   "topic",
			Message: "Required",
		})
	}
	if utf8.RuneCountInString(topic) > maxTopicLength {
		return Result{}, apperr.ValidationError(messageTopicTooLong, apperr.FieldError{
			Field:   "topic",
			Message: fmt.Sprintf("Must not exceed %d characters", maxTopicLength),
		})
	}

	if service.completer == nil {
		return Result{}, apperr.ServiceUnavailable(messageUnavailable)
	}

	poem, err := service.completer.Complete(ctx, systemPrompt, fmt.Sprintf(userPromptFormat, topic))
	if err != nil {
		service.metrics.Generation(metrics.OutcomeFailure)
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "poem_generation_failed",
			slog.String("model", service.completer.Model()),
			slog.String("error", err.Error()),
		)
		return Result{}, apperr.BadGateway(messageFailed, err)
	}

	service.metrics.Generation(metrics.OutcomeSuccess)
	return Result{Topic: topic, Poem: poem, Model: service.completer.Model()}, nil
}
