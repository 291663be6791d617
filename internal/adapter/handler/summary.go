package handler

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	summaryDTO "github.com/johnquangdev/meeting-notes/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
	"github.com/johnquangdev/meeting-notes/pkg/validator"
)

// maxTranscriptFileSize caps uploaded transcript files
const maxTranscriptFileSize = 1 << 20

// Summary handles transcript summarization endpoints
type Summary struct {
	summaries   summary.Service
	credentials *credential.Service
	logger      *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaries summary.Service, credentials *credential.Service, logger *zap.Logger) *Summary {
	return &Summary{
		summaries:   summaries,
		credentials: credentials,
		logger:      logger,
	}
}

// CreateSummary handles POST /summaries
// @Summary      Summarize a meeting transcript
// @Description  Sends the transcript to the language model once and returns the structured summary
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request       body      summary.CreateSummaryRequest  true   "Transcript to summarize"
// @Param        X-OpenAI-Key  header    string                        false  "OpenAI API key for this call"
// @Success      200      {object}  summary.SummaryResponse       "Summary generated"
// @Failure      400      {object}  map[string]interface{}        "Empty transcript or missing API key"
// @Failure      401      {object}  map[string]interface{}        "Invalid API key"
// @Failure      403      {object}  map[string]interface{}        "API access forbidden"
// @Failure      429      {object}  map[string]interface{}        "Rate limit exceeded"
// @Failure      502      {object}  map[string]interface{}        "AI service error or invalid AI response"
// @Router       /summaries [post]
func (h *Summary) CreateSummary(c echo.Context) error {
	var req summaryDTO.CreateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(strings.Join(validator.Violations(err), "; ")))
	}

	return h.summarize(c, req.APIKey, req.Transcript)
}

// UploadTranscript handles POST /summaries/upload
// @Summary      Summarize an uploaded transcript file
// @Description  Reads a plain text transcript file and summarizes its content unchanged
// @Tags         Summaries
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Plain text transcript"
// @Param        api_key  formData  string  false  "OpenAI API key for this call"
// @Success      200      {object}  summary.SummaryResponse  "Summary generated"
// @Failure      400      {object}  map[string]interface{}   "Missing or unreadable file"
// @Failure      502      {object}  map[string]interface{}   "AI service error or invalid AI response"
// @Router       /summaries/upload [post]
func (h *Summary) UploadTranscript(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscriptFile(err))
	}
	if fh.Size > maxTranscriptFileSize {
		return HandleError(h.logger, c, errors.ErrInvalidTranscriptFile(
			fmt.Errorf("file is %d bytes, limit is %d", fh.Size, maxTranscriptFileSize)))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscriptFile(err))
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxTranscriptFileSize))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidTranscriptFile(err))
	}
	if !utf8.Valid(content) {
		return HandleError(h.logger, c, errors.ErrInvalidTranscriptFile(fmt.Errorf("%s is not a text file", fh.Filename)))
	}

	if h.logger != nil {
		h.logger.Info("📄 Transcript file received",
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
		)
	}

	return h.summarize(c, c.FormValue("api_key"), string(content))
}

func (h *Summary) summarize(c echo.Context, explicitKey, transcript string) error {
	ctx := c.Request().Context()

	// reject blank input before touching the credential store
	if strings.TrimSpace(transcript) == "" {
		return HandleError(h.logger, c, errors.ErrEmptyTranscript())
	}

	// body or form key first, then the request header, then the stored key
	if strings.TrimSpace(explicitKey) == "" {
		explicitKey = httpmw.APIKeyFromContext(c)
	}

	apiKey, err := h.credentials.Resolve(ctx, explicitKey)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.summaries.Summarize(ctx, apiKey, transcript)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(result))
}
