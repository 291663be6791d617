package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// Parser turns model output into a MeetingSummary
type Parser struct {
	validate *pkgvalidator.CustomValidator
}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{validate: pkgvalidator.New()}
}

// ParseSummary parses the model content. It fails with *ParseError when the
// content is not JSON and with *StructureError when a summary field is
// absent, null, or of the wrong JSON type.
func (p *Parser) ParseSummary(content string) (*entities.MeetingSummary, error) {
	jsonText := extractJSON(content)

	if !json.Valid([]byte(jsonText)) {
		var probe interface{}
		err := json.Unmarshal([]byte(jsonText), &probe)
		return nil, &usecaseErrors.ParseError{Raw: content, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &fields); err != nil {
		return nil, &usecaseErrors.StructureError{Err: fmt.Errorf("expected a JSON object")}
	}

	var missing []string
	for _, name := range entities.SummaryFields {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &usecaseErrors.StructureError{Missing: missing}
	}

	var summary entities.MeetingSummary
	if err := json.Unmarshal([]byte(jsonText), &summary); err != nil {
		return nil, &usecaseErrors.StructureError{Err: err}
	}

	return &summary, nil
}

// CheckSchema reports element-level problems the presence check lets
// through, such as a priority outside high/medium/low.
func (p *Parser) CheckSchema(summary *entities.MeetingSummary) []string {
	if summary == nil {
		return nil
	}
	return pkgvalidator.Violations(p.validate.Validate(summary))
}

// extractJSON strips a markdown code fence around the content, if any
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
