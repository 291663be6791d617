package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the saved OpenAI API key",
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Credentials == nil {
			return fmt.Errorf("credential store not initialized")
		}

		status, err := Credentials.Status(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("reading API key: %w", err)
		}

		out := cmd.OutOrStdout()
		if !status.Configured {
			fmt.Fprintln(out, "No API key saved")
			return nil
		}
		fmt.Fprintf(out, "API key saved: %s\n", status.Masked)
		return nil
	},
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Save an API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Credentials == nil {
			return fmt.Errorf("credential store not initialized")
		}

		warning, err := Credentials.Save(commandContext(cmd), args[0])
		if err != nil {
			return fmt.Errorf("saving API key: %w", err)
		}
		if warning != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
		}
		if !Persistent {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: REDIS_ENABLED is off, the key is kept for this process only")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Credentials == nil {
			return fmt.Errorf("credential store not initialized")
		}

		if err := Credentials.Clear(commandContext(cmd)); err != nil {
			return fmt.Errorf("clearing API key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key cleared")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keyStatusCmd, keySetCmd, keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}
