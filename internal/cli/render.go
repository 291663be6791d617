package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	switch f {
	case formatText, formatJSON, formatYAML:
		return true
	}
	return false
}

func render(w io.Writer, format string, r *summary.Result) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(r.Summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		out, err := yaml.Marshal(r.Summary)
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return renderText(w, r)
	}
}

type textStyles struct {
	header lipgloss.Style
	high   lipgloss.Style
	medium lipgloss.Style
	low    lipgloss.Style
	muted  lipgloss.Style
}

// newTextStyles binds styles to w so colour is only emitted on terminals
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		high:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		medium: r.NewStyle().Foreground(lipgloss.Color("226")),
		low:    r.NewStyle().Foreground(lipgloss.Color("46")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (st textStyles) priority(p entities.Priority) lipgloss.Style {
	switch p {
	case entities.PriorityHigh:
		return st.high
	case entities.PriorityMedium:
		return st.medium
	case entities.PriorityLow:
		return st.low
	}
	return st.muted
}

func renderText(w io.Writer, r *summary.Result) error {
	s := r.Summary
	st := newTextStyles(w)
	var b strings.Builder

	none := st.muted.Render("(none)")
	section := func(title string, items []string) {
		fmt.Fprintf(&b, "%s\n", st.header.Render(title))
		if len(items) == 0 {
			fmt.Fprintf(&b, "  %s\n", none)
		}
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
		b.WriteString("\n")
	}

	section("Key Highlights", s.Highlights)

	fmt.Fprintf(&b, "%s\n", st.header.Render("Action Items"))
	if len(s.ActionItems) == 0 {
		fmt.Fprintf(&b, "  %s\n", none)
	}
	for _, item := range s.ActionItems {
		tag := st.priority(item.Priority).Render("[" + strings.ToUpper(string(item.Priority)) + "]")
		line := fmt.Sprintf("  - %s %s", tag, item.Task)
		if item.Assignee != "" {
			line += fmt.Sprintf(" (%s)", item.Assignee)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	section("Decisions", s.Decisions)
	section("Speakers", s.Speakers)
	section("Topics", s.Topics)

	o := presenter.ToOverviewResponse(s)
	fmt.Fprintf(&b, "%s %d speakers, %d action items (%d high, %d medium, %d low)\n",
		st.header.Render("Overview:"),
		o.SpeakerCount, o.ActionItemCount, o.HighPriority, o.MediumPriority, o.LowPriority)

	_, err := io.WriteString(w, b.String())
	return err
}
