/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/birdcage/zendesk-ada/zendesk"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var listCategoriesUsage = strings.TrimSpace(`
Print the Help Center's categories with their ids.  Category ids are what
--categories takes.
`)

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print list of Help Center categories",
	Long:  listCategoriesUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newZendeskAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing Help Center categories on '%s'...\n", ZendeskSubdomain)
		categories, err := api.GetCategories(cmd.Context())
		if err != nil {
			return fmt.Errorf("cmd: couldn't list categories: %w", err)
		}
		log.Printf("Found %d categories.\n", len(categories))

		slices.SortFunc(categories, func(a, b zendesk.Category) int {
			return strings.Compare(a.Name, b.Name)
		})

		fmt.Printf("categories:\n")
		for _, category := range categories {
			fmt.Printf("  - %d: %s\n", category.ID, category.Name)
		}

		return nil
	},
}

func init() {
	listCmd.AddCommand(listCategoriesCmd)
}
