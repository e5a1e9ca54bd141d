/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var listLocalesUsage = strings.TrimSpace(`
Print the locales the Help Center publishes articles in.  Locale codes are
what --locales takes.
`)

var listLocalesCmd = &cobra.Command{
	Use:   "locales",
	Short: "Print list of Help Center locales",
	Long:  listLocalesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newZendeskAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing Help Center locales on '%s'...\n", ZendeskSubdomain)
		locales, err := api.GetLocales(cmd.Context())
		if err != nil {
			// A Help Center without locale settings still serves articles, so
			// fall back to English rather than bailing out.
			log.Printf("Warning: couldn't list locales (%v), assuming 'en'.\n", err)
			locales = []string{"en"}
		}

		sort.Strings(locales)

		fmt.Printf("locales:\n")
		for _, locale := range locales {
			fmt.Printf("  - %s\n", locale)
		}

		return nil
	},
}

func init() {
	listCmd.AddCommand(listLocalesCmd)
}
