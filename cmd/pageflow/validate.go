package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobyv/pageflow/pkg/core"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a navigation-state file for damage",
	Long: `Validate the structure of a navigation-state file. Structural damage
(missing counts, truncated stacks) fails validation. Empty type tokens and
types recorded more than once are reported as warnings: a duplicated type
fails the instance cache when the entry is revisited.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading state file", err)
		}
		doc, err := core.ParseState(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			os.Exit(1)
		}

		warnings := 0
		seen := map[string]int{}
		check := func(scope string, entry core.StateEntry) {
			if entry.SourceType == "" {
				fmt.Printf("warning: %s entry has an empty type token\n", scope)
				warnings++
				return
			}
			seen[entry.SourceType]++
			if seen[entry.SourceType] == 2 {
				fmt.Printf("warning: type %s is recorded more than once; revisiting it fails the page cache\n",
					entry.SourceType)
				warnings++
			}
		}
		if doc.Current != nil {
			check("current", *doc.Current)
		}
		for _, entry := range doc.Back {
			check("back", entry)
		}
		for _, entry := range doc.Forward {
			check("forward", entry)
		}

		fmt.Printf("ok: back=%d forward=%d warnings=%d\n", len(doc.Back), len(doc.Forward), warnings)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
