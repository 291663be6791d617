package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

type summarizerMock struct {
	summarizeFn func(apiKey, transcript string) (*summary.Result, error)
	calls       int
}

func (m *summarizerMock) Summarize(_ context.Context, apiKey, transcript string) (*summary.Result, error) {
	m.calls++
	if m.summarizeFn != nil {
		return m.summarizeFn(apiKey, transcript)
	}
	return sampleResult(), nil
}

func sampleResult() *summary.Result {
	return &summary.Result{
		Summary: &entities.MeetingSummary{
			Highlights:  []string{"Q4 targets exceeded by 15%"},
			ActionItems: []entities.ActionItem{{Task: "Schedule follow-up", Assignee: "Sarah", Priority: entities.PriorityMedium}},
			Decisions:   []string{},
			Speakers:    []string{"John", "Sarah"},
			Topics:      []string{"Revenue"},
		},
		Model: "gpt-4o",
	}
}

// setup swaps the package dependencies for the duration of a test
func setup(t *testing.T, mock *summarizerMock) {
	t.Helper()

	origSummarizer, origCreds, origEnv, origPersistent := Summarizer, Credentials, EnvAPIKey, Persistent
	t.Cleanup(func() {
		Summarizer, Credentials, EnvAPIKey, Persistent = origSummarizer, origCreds, origEnv, origPersistent
	})

	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	Summarizer = mock
	Credentials = credential.NewService(repository.NewMemoryCredentialRepository(store), nil, nil)
	EnvAPIKey = ""
	Persistent = false
}

func execute(stdin string, args ...string) (string, string, error) {
	summarizeAPIKey = ""
	summarizeFormat = formatText

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSummarize_NotInitialized(t *testing.T) {
	setup(t, &summarizerMock{})
	Summarizer = nil

	_, _, err := execute("John: hi", "summarize")
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSummarize_StdinText(t *testing.T) {
	mock := &summarizerMock{}
	setup(t, mock)

	out, _, err := execute("John: We exceeded Q4 targets.", "summarize", "--api-key", "sk-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Key Highlights", "[MEDIUM] Schedule follow-up (Sarah)", "Decisions\n  (none)", "Overview: 2 speakers, 1 action items"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummarize_JSONMatchesModelOutput(t *testing.T) {
	setup(t, &summarizerMock{})

	out, _, err := execute("John: hi", "summarize", "-o", "json", "--api-key", "sk-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got entities.MeetingSummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Speakers[1] != "Sarah" || got.ActionItems[0].Priority != entities.PriorityMedium {
		t.Fatalf("unexpected summary %+v", got)
	}
	if !strings.Contains(out, `"actionItems"`) {
		t.Fatalf("json must keep the model's field names:\n%s", out)
	}
}

func TestSummarize_YAML(t *testing.T) {
	setup(t, &summarizerMock{})

	out, _, err := execute("John: hi", "summarize", "--format", "yaml", "--api-key", "sk-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got entities.MeetingSummary
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if len(got.ActionItems) != 1 || got.ActionItems[0].Assignee != "Sarah" {
		t.Fatalf("unexpected summary %+v", got)
	}
	if !strings.Contains(out, "actionItems:") {
		t.Fatalf("yaml must use actionItems key:\n%s", out)
	}
}

func TestSummarize_File(t *testing.T) {
	mock := &summarizerMock{}
	setup(t, mock)

	const transcript = "John: hello\nSarah: hi\n"
	path := filepath.Join(t.TempDir(), "meeting.txt")
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotTranscript string
	mock.summarizeFn = func(_, transcript string) (*summary.Result, error) {
		gotTranscript = transcript
		return sampleResult(), nil
	}

	if _, _, err := execute("", "summarize", path, "--api-key", "sk-flag"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTranscript != transcript {
		t.Fatalf("file content changed: %q", gotTranscript)
	}

	if _, _, err := execute("", "summarize", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	mock := &summarizerMock{}
	setup(t, mock)

	_, _, err := execute("  \n ", "summarize", "--api-key", "sk-flag")
	if !errors.Is(err, usecaseErrors.ErrEmptyTranscript) {
		t.Fatalf("expected ErrEmptyTranscript, got %v", err)
	}
	if mock.calls != 0 {
		t.Fatal("summarizer must not be called for blank input")
	}
}

func TestSummarize_BadFormat(t *testing.T) {
	mock := &summarizerMock{}
	setup(t, mock)

	_, _, err := execute("John: hi", "summarize", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.calls != 0 {
		t.Fatal("summarizer must not be called for a bad format")
	}
}

func TestSummarize_KeyResolution(t *testing.T) {
	mock := &summarizerMock{}
	setup(t, mock)

	var gotKey string
	mock.summarizeFn = func(apiKey, _ string) (*summary.Result, error) {
		gotKey = apiKey
		return sampleResult(), nil
	}

	if _, _, err := execute("John: hi", "summarize"); !errors.Is(err, usecaseErrors.ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}

	if _, err := Credentials.Save(context.Background(), "sk-saved0001"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute("John: hi", "summarize"); err != nil || gotKey != "sk-saved0001" {
		t.Fatalf("saved key not used: %q %v", gotKey, err)
	}

	EnvAPIKey = "sk-env"
	if _, _, err := execute("John: hi", "summarize"); err != nil || gotKey != "sk-env" {
		t.Fatalf("env key not used: %q %v", gotKey, err)
	}

	if _, _, err := execute("John: hi", "summarize", "--api-key", "sk-flag"); err != nil || gotKey != "sk-flag" {
		t.Fatalf("flag key not used: %q %v", gotKey, err)
	}
}

func TestSummarize_ErrorsAreWrapped(t *testing.T) {
	setup(t, &summarizerMock{
		summarizeFn: func(_, _ string) (*summary.Result, error) {
			return nil, pkgai.ErrRateLimited
		},
	})

	_, _, err := execute("John: hi", "summarize", "--api-key", "sk-flag")
	if !errors.Is(err, pkgai.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestSummarize_WarningsGoToStderr(t *testing.T) {
	setup(t, &summarizerMock{
		summarizeFn: func(_, _ string) (*summary.Result, error) {
			r := sampleResult()
			r.Warnings = []string{"actionItems[0].priority: must be one of [high medium low]"}
			return r, nil
		},
	})

	out, errOut, err := execute("John: hi", "summarize", "-o", "json", "--api-key", "sk-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "warning: actionItems[0].priority") {
		t.Fatalf("warning not printed to stderr: %q", errOut)
	}
	if strings.Contains(out, "warning") {
		t.Fatal("warnings must not pollute stdout")
	}
}

func TestKeyCommands(t *testing.T) {
	setup(t, &summarizerMock{})

	out, _, err := execute("", "key", "status")
	if err != nil || !strings.Contains(out, "No API key saved") {
		t.Fatalf("status before set: %q %v", out, err)
	}

	out, errOut, err := execute("", "key", "set", "sk-proj-abcdef1234")
	if err != nil || !strings.Contains(out, "API key saved") {
		t.Fatalf("set: %q %v", out, err)
	}
	if !strings.Contains(errOut, "REDIS_ENABLED is off") {
		t.Fatalf("expected persistence warning, got %q", errOut)
	}

	out, _, err = execute("", "key", "status")
	if err != nil || !strings.Contains(out, "sk-…1234") {
		t.Fatalf("status after set: %q %v", out, err)
	}
	if strings.Contains(out, "abcdef") {
		t.Fatal("status must not reveal the key")
	}

	if _, _, err := execute("", "key", "set", "   "); !errors.Is(err, usecaseErrors.ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}

	out, _, err = execute("", "key", "clear")
	if err != nil || !strings.Contains(out, "API key cleared") {
		t.Fatalf("clear: %q %v", out, err)
	}
	out, _, _ = execute("", "key", "status")
	if !strings.Contains(out, "No API key saved") {
		t.Fatalf("status after clear: %q", out)
	}
}
