package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobyv/pageflow/pkg/core"
)

var (
	inspectJSON bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Dump a navigation-state file",
	Long:  `Parse a navigation-state file and print the current entry plus the back and forward stacks. Outputs human-readable text by default, or JSON with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading state file", err)
		}
		doc, err := core.ParseState(string(data))
		if err != nil {
			fatal("Error parsing state file", err)
		}

		if inspectJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(doc); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if doc.Current != nil {
			fmt.Printf("current: %s\n", formatEntry(*doc.Current))
		} else {
			fmt.Println("current: <none>")
		}
		fmt.Printf("back (%d):\n", len(doc.Back))
		for i, entry := range doc.Back {
			fmt.Printf("  %d: %s\n", i, formatEntry(entry))
		}
		fmt.Printf("forward (%d):\n", len(doc.Forward))
		for i, entry := range doc.Forward {
			fmt.Printf("  %d: %s\n", i, formatEntry(entry))
		}
	},
}

func formatEntry(e core.StateEntry) string {
	if e.Parameter == "" {
		return e.SourceType
	}
	return fmt.Sprintf("%s (%s)", e.SourceType, e.Parameter)
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(inspectCmd)
}
