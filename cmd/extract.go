package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"content-loop/internal/jsonx"

	"github.com/spf13/cobra"
)

// debugExtractCmd parses a saved model response and prints the JSON payload
// it contains. Handy when a pipeline logs a parse failure.
var debugExtractCmd = &cobra.Command{
	Use:   "debug-extract <path>",
	Short: "Debug: extract the JSON payload from a saved model response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		payload, err := jsonx.Extract(string(raw))
		if err != nil {
			return err
		}
		var buf any
		if err := json.Unmarshal(payload, &buf); err != nil {
			return err
		}
		pretty, err := json.MarshalIndent(buf, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugExtractCmd)
}
