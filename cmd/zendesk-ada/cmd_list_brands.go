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

var listBrandsUsage = strings.TrimSpace(`
Print the account's brands with their ids and the base URL each one's Help
Center is actually served from.  Brand ids are what --brands takes.
`)

var listBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Print brand → base URL mapping",
	Long:  listBrandsUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newZendeskAPI()
		if err != nil {
			return err
		}

		log.Printf("Listing brands on '%s'...\n", ZendeskSubdomain)
		brands, err := api.GetBrands(cmd.Context())
		if err != nil {
			return fmt.Errorf("cmd: couldn't list brands: %w", err)
		}
		log.Printf("Found %d brands.\n", len(brands))

		slices.SortFunc(brands, func(a, b zendesk.Brand) int {
			return strings.Compare(a.Name, b.Name)
		})

		fmt.Printf("brands:\n")
		for _, brand := range brands {
			domain := "zendesk subdomain"
			if brand.HostMapping != "" {
				domain = "custom domain"
			}
			fmt.Printf("  - %d: %s (%s, %s)\n", brand.ID, brand.Name, zendesk.BrandBaseURL(brand), domain)
		}

		return nil
	},
}

func init() {
	listCmd.AddCommand(listBrandsCmd)
}
