package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

var (
	summarizeAPIKey string
	summarizeFormat string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a meeting transcript",
	Long: `Read a plain text transcript from a file, or from stdin when no file or "-"
is given, and print the structured summary.

Formats: text (default), json, yaml. The json output is the summary exactly
as the model returned it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeAPIKey, "api-key", "", "OpenAI API key for this call")
	summarizeCmd.Flags().StringVarP(&summarizeFormat, "format", "o", formatText, "Output format: text, json or yaml")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if Summarizer == nil || Credentials == nil {
		return fmt.Errorf("summarizer not initialized")
	}

	format := strings.ToLower(strings.TrimSpace(summarizeFormat))
	if !validFormat(format) {
		return fmt.Errorf("unknown format %q: use text, json or yaml", summarizeFormat)
	}

	transcript, err := readTranscript(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return usecaseErrors.ErrEmptyTranscript
	}

	ctx := commandContext(cmd)

	explicit := summarizeAPIKey
	if strings.TrimSpace(explicit) == "" {
		explicit = EnvAPIKey
	}
	apiKey, err := Credentials.Resolve(ctx, explicit)
	if err != nil {
		return fmt.Errorf("resolving API key: %w", err)
	}

	result, err := Summarizer.Summarize(ctx, apiKey, transcript)
	if err != nil {
		return fmt.Errorf("summarizing transcript: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	return render(cmd.OutOrStdout(), format, result)
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
		name = "stdin"
	)

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading transcript: %s is not a text file", name)
	}
	return string(data), nil
}
