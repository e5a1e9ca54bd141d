/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var listSourcesUsage = strings.TrimSpace(`
Print the Ada instance's knowledge sources.  Source ids are what --source-id
takes; use one of these to append to an existing source instead of creating a
fresh one with --create-source.
`)

var listSourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print list of Ada knowledge sources",
	Long:  listSourcesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAdaAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing knowledge sources on '%s'...\n", AdaHandle)
		sources, err := api.ListKnowledgeSources(cmd.Context())
		if err != nil {
			return fmt.Errorf("cmd: couldn't list knowledge sources: %w", err)
		}
		log.Printf("Found %d knowledge sources.\n", len(sources))

		fmt.Printf("knowledge sources:\n")
		for _, source := range sources {
			fmt.Printf("  - %s: %s\n", source.ID, source.Name)
		}

		return nil
	},
}

func init() {
	listCmd.AddCommand(listSourcesCmd)
}
