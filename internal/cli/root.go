package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/usecase/credential"
	"github.com/johnquangdev/meeting-notes/internal/usecase/summary"
)

// Dependencies wired by main before Execute.
var (
	Summarizer  summary.Service
	Credentials *credential.Service

	// EnvAPIKey is used when --api-key is not given
	EnvAPIKey string

	// Persistent reports whether saved keys outlive the process
	Persistent bool
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Meeting notes - turn transcripts into structured summaries",
	Long: `notes sends a meeting transcript to an OpenAI-compatible chat model once
and prints the highlights, action items, decisions, speakers and topics it
extracts.

The API key comes from --api-key, then OPENAI_API_KEY, then the key saved
with "notes key set" (persisted only when REDIS_ENABLED=true).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
