package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobyv/pageflow/pkg/core"
)

var (
	trimKeep int
)

var trimCmd = &cobra.Command{
	Use:   "trim [file]",
	Short: "Cap the back stack of a navigation-state file",
	Long:  `Rewrite a navigation-state file keeping only the most recent N back-stack entries. The oldest entries are dropped first, mirroring the engine's eviction order.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if trimKeep < 0 {
			fatal("Invalid --keep", fmt.Errorf("must be non-negative, got %d", trimKeep))
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Error reading state file", err)
		}
		doc, err := core.ParseState(string(data))
		if err != nil {
			fatal("Error parsing state file", err)
		}

		dropped := 0
		if len(doc.Back) > trimKeep {
			dropped = len(doc.Back) - trimKeep
			doc.Back = doc.Back[dropped:]
		}
		if err := os.WriteFile(args[0], []byte(doc.Encode()), 0644); err != nil {
			fatal("Error writing state file", err)
		}
		fmt.Printf("dropped %d back-stack entries, kept %d\n", dropped, len(doc.Back))
	},
}

func init() {
	trimCmd.Flags().IntVar(&trimKeep, "keep", 10, "Number of most recent back-stack entries to keep")
	rootCmd.AddCommand(trimCmd)
}
