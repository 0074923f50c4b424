package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd executes one pipeline once and prints its summary.
var runCmd = &cobra.Command{
	Use:   "run <pipeline>",
	Short: "Run one pipeline once and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var names []string
		for _, pc := range cfg.Pipelines {
			names = append(names, pc.Name)
			if pc.Name != args[0] {
				continue
			}
			rt, err := newRuntime(cfg)
			if err != nil {
				return err
			}
			defer rt.Close()
			if rt.llm == nil {
				slog.Warn("no llm api key configured, generation will be skipped")
			}

			sum := rt.pipelineFor(pc).Run(cmd.Context())
			out, err := json.MarshalIndent(sum, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if rt.dry != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "dry run: %d record(s) would have been written\n", len(rt.dry.Records()))
			}
			return nil
		}
		return fmt.Errorf("unknown pipeline %q (configured: %s)", args[0], strings.Join(names, ", "))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
