package summary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/callcontext"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Completer sends chat messages to a language model and returns the first
// completion's content.
type Completer interface {
	Complete(ctx context.Context, apiKey string, messages []pkgai.Message) (string, error)
	Model() string
}

// Service defines the summarization use case
type Service interface {
	// Summarize turns a transcript into a MeetingSummary with one model call.
	Summarize(ctx context.Context, apiKey, transcript string) (*Result, error)
}

// Result is the outcome of a successful Summarize call
type Result struct {
	ID       uuid.UUID
	Summary  *entities.MeetingSummary
	Warnings []string
	Model    string
	Duration time.Duration
}

type summaryService struct {
	client Completer
	parser *Parser
	strict bool
	logger *zap.Logger
}

// NewSummaryService constructs the summarization service. A nil cfg selects
// lenient schema checking; a nil logger disables logging.
func NewSummaryService(client Completer, cfg *config.SummaryConfig, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &summaryService{
		client: client,
		parser: NewParser(),
		logger: logger,
	}
	if cfg != nil {
		s.strict = cfg.StrictValidation
	}
	return s
}

// Summarize validates the input, calls the model once, and validates the
// returned content. Failures are returned as-is; nothing is retried.
func (s *summaryService) Summarize(ctx context.Context, apiKey, transcript string) (*Result, error) {
	ctx, callID := callcontext.Begin(ctx)
	log := s.logger.With(
		zap.String("call_id", callID.String()),
		zap.String("request_id", callcontext.GetRequestID(ctx)),
	)

	if strings.TrimSpace(transcript) == "" {
		log.Warn("rejected empty transcript")
		return nil, usecaseErrors.ErrEmptyTranscript
	}
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("rejected summarization without API key")
		return nil, usecaseErrors.ErrAPIKeyRequired
	}

	log.Info("🤖 Starting AI summarization",
		zap.Int("transcript_chars", len(transcript)),
		zap.String("model", s.client.Model()),
	)
	start := time.Now()

	content, err := s.client.Complete(ctx, apiKey, BuildMessages(transcript))
	if err != nil {
		log.Error("❌ AI service call failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	log.Debug("AI response received", zap.String("raw_content", content))

	summary, err := s.parser.ParseSummary(content)
	if err != nil {
		var parseErr *usecaseErrors.ParseError
		if errors.As(err, &parseErr) {
			log.Error("❌ Failed to parse AI response",
				zap.String("raw_content", parseErr.Raw),
				zap.Error(err),
			)
		} else {
			log.Error("❌ Invalid summary structure from AI",
				zap.String("raw_content", content),
				zap.Error(err),
			)
		}
		return nil, err
	}

	warnings := s.parser.CheckSchema(summary)
	if len(warnings) > 0 {
		if s.strict {
			log.Error("❌ Summary failed schema validation", zap.Strings("violations", warnings))
			return nil, &usecaseErrors.StructureError{Violations: warnings}
		}
		log.Warn("⚠️ Summary accepted with schema warnings", zap.Strings("violations", warnings))
	}

	elapsed := time.Since(start)
	log.Info("✅ AI summarization completed",
		zap.Int("highlights", len(summary.Highlights)),
		zap.Int("action_items", len(summary.ActionItems)),
		zap.Int("speakers", len(summary.Speakers)),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		ID:       callID,
		Summary:  summary,
		Warnings: warnings,
		Model:    s.client.Model(),
		Duration: elapsed,
	}, nil
}
