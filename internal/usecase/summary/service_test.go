package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeCompleter struct {
	mu       sync.Mutex
	content  string
	err      error
	calls    int
	apiKey   string
	messages []pkgai.Message
}

func (f *fakeCompleter) Complete(_ context.Context, apiKey string, messages []pkgai.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.apiKey = apiKey
	f.messages = messages
	return f.content, f.err
}

func (f *fakeCompleter) Model() string { return "fake-model" }

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSummarize_BlankTranscriptNeverCallsModel(t *testing.T) {
	fake := &fakeCompleter{content: fullSummary}
	svc := NewSummaryService(fake, nil, nil)

	blanks := []rune{' ', '\t', '\n', '\r', '\v', '\f', '\u00a0', '\u2003'}
	rapid.Check(t, func(t *rapid.T) {
		transcript := rapid.StringOf(rapid.SampledFrom(blanks)).Draw(t, "transcript")

		_, err := svc.Summarize(context.Background(), "sk-test", transcript)
		if !errors.Is(err, usecaseErrors.ErrEmptyTranscript) {
			t.Fatalf("expected ErrEmptyTranscript for %q, got %v", transcript, err)
		}
	})

	if fake.callCount() != 0 {
		t.Fatalf("model called %d times for blank input", fake.callCount())
	}
}

func TestSummarize_TranscriptAppendedVerbatim(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		transcript := rapid.String().Filter(func(s string) bool {
			return strings.TrimSpace(s) != ""
		}).Draw(t, "transcript")

		fake := &fakeCompleter{content: fullSummary}
		svc := NewSummaryService(fake, nil, nil)

		if _, err := svc.Summarize(context.Background(), "sk-test", transcript); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(fake.messages))
		}
		if fake.messages[0].Role != pkgai.RoleSystem || fake.messages[0].Content != systemPrompt {
			t.Fatalf("unexpected system message: %+v", fake.messages[0])
		}
		if fake.messages[1].Content != extractionPrompt+transcript {
			t.Fatalf("user message does not end with the transcript")
		}
	})
}

func TestSummarize_MissingAPIKey(t *testing.T) {
	fake := &fakeCompleter{content: fullSummary}
	svc := NewSummaryService(fake, nil, nil)

	_, err := svc.Summarize(context.Background(), "  ", "John: hello")
	if !errors.Is(err, usecaseErrors.ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}
	if fake.callCount() != 0 {
		t.Fatal("model must not be called without an API key")
	}
}

func TestSummarize_PassesAPIKeyThrough(t *testing.T) {
	fake := &fakeCompleter{content: fullSummary}
	svc := NewSummaryService(fake, nil, nil)

	res, err := svc.Summarize(context.Background(), "sk-explicit", "John: hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.apiKey != "sk-explicit" {
		t.Fatalf("unexpected api key %q", fake.apiKey)
	}
	if res.Model != "fake-model" {
		t.Fatalf("unexpected model %q", res.Model)
	}
	if res.ID.String() == "" {
		t.Fatal("expected a call id")
	}
}

func TestSummarize_TransportErrorsSurfaceUnchanged(t *testing.T) {
	for _, want := range []error{
		pkgai.ErrAuthentication,
		pkgai.ErrRateLimited,
		pkgai.ErrAccessDenied,
		pkgai.ErrMalformedResponse,
		&pkgai.ServiceError{StatusCode: 500},
	} {
		fake := &fakeCompleter{err: want}
		svc := NewSummaryService(fake, nil, nil)

		_, err := svc.Summarize(context.Background(), "sk-test", "John: hello")
		if !errors.Is(err, want) {
			t.Errorf("expected %v, got %v", want, err)
		}
		if fake.callCount() != 1 {
			t.Errorf("expected exactly one call, got %d", fake.callCount())
		}
	}
}

func TestSummarize_ParseError(t *testing.T) {
	fake := &fakeCompleter{content: "Sure! Here are the notes."}
	svc := NewSummaryService(fake, nil, nil)

	_, err := svc.Summarize(context.Background(), "sk-test", "John: hello")

	var parseErr *usecaseErrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Raw != "Sure! Here are the notes." {
		t.Fatalf("raw content not retrievable: %q", parseErr.Raw)
	}
}

func TestSummarize_MissingField(t *testing.T) {
	fake := &fakeCompleter{content: `{"highlights":[],"actionItems":[],"decisions":[],"speakers":[]}`}
	svc := NewSummaryService(fake, nil, nil)

	_, err := svc.Summarize(context.Background(), "sk-test", "John: hello")
	if !errors.Is(err, usecaseErrors.ErrInvalidSummaryStructure) {
		t.Fatalf("expected ErrInvalidSummaryStructure, got %v", err)
	}
}

func TestSummarize_PriorityOutOfRange(t *testing.T) {
	content := `{"highlights":[],"actionItems":[{"task":"t","priority":"urgent"}],"decisions":[],"speakers":[],"topics":[]}`

	t.Run("lenient keeps summary and warns", func(t *testing.T) {
		svc := NewSummaryService(&fakeCompleter{content: content}, &config.SummaryConfig{}, nil)

		res, err := svc.Summarize(context.Background(), "sk-test", "John: hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary.ActionItems[0].Priority != "urgent" {
			t.Fatalf("summary must be returned unmodified, got %q", res.Summary.ActionItems[0].Priority)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected one warning, got %v", res.Warnings)
		}
	})

	t.Run("strict rejects", func(t *testing.T) {
		svc := NewSummaryService(&fakeCompleter{content: content}, &config.SummaryConfig{StrictValidation: true}, nil)

		_, err := svc.Summarize(context.Background(), "sk-test", "John: hello")
		if !errors.Is(err, usecaseErrors.ErrInvalidSummaryStructure) {
			t.Fatalf("expected ErrInvalidSummaryStructure, got %v", err)
		}
		var structErr *usecaseErrors.StructureError
		if !errors.As(err, &structErr) || len(structErr.Violations) != 1 {
			t.Fatalf("expected one violation, got %v", err)
		}
	})
}

func TestSummarize_RoundTripThroughChatClient(t *testing.T) {
	const transcript = "John: We exceeded Q4 targets by 15%. Sarah: let's schedule a follow-up."
	const content = `{"highlights":["Q4 targets exceeded by 15%"],"actionItems":[{"task":"Schedule follow-up","priority":"medium"}],"decisions":[],"speakers":["John","Sarah"],"topics":["Revenue"]}`

	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		var req pkgai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if !strings.HasSuffix(req.Messages[len(req.Messages)-1].Content, transcript) {
			t.Fatalf("transcript missing from user message")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	defer ts.Close()

	client := pkgai.NewChatClient(&config.OpenAIConfig{
		BaseURL:     ts.URL,
		Model:       "gpt-4o",
		Temperature: 0.3,
		MaxTokens:   1500,
		Timeout:     5 * time.Second,
	})
	svc := NewSummaryService(client, &config.SummaryConfig{}, nil)

	res, err := svc.Summarize(context.Background(), "sk-test", transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected one request, got %d", requests)
	}

	want := &entities.MeetingSummary{
		Highlights:  []string{"Q4 targets exceeded by 15%"},
		ActionItems: []entities.ActionItem{{Task: "Schedule follow-up", Priority: entities.PriorityMedium}},
		Decisions:   []string{},
		Speakers:    []string{"John", "Sarah"},
		Topics:      []string{"Revenue"},
	}
	if !reflect.DeepEqual(res.Summary, want) {
		t.Fatalf("got %+v, want %+v", res.Summary, want)
	}

	// re-encoding gives back the exact document the model produced
	out, err := json.Marshal(res.Summary)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != content {
		t.Fatalf("round trip changed the summary:\n got %s\nwant %s", out, content)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}
