/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/birdcage/zendesk-ada/migrate"
	"github.com/spf13/cobra"
)

var fetchUsage = strings.TrimSpace(`
Fetch articles from the Help Center, apply the selected filters, and write
the raw article list to a JSON file.  Nothing is uploaded; use this to check
what a migration would pick up.
`)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and export filtered Help Center articles",
	Long:  fetchUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd)
	},
}

var (
	FilterLocales    []string
	FilterBrands     []string
	FilterCategories []string
	PublishedOnly    bool
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	addFilterFlags(fetchCmd)
}

// addFilterFlags registers the article selection flags; fetch and migrate
// share them, and their names double as YAML config keys.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&FilterLocales, "locales", []string{}, "locales to fetch, e.g. en,fr")
	cmd.Flags().StringSliceVar(&FilterBrands, "brands", []string{}, "brand ids to fetch (see 'list brands')")
	cmd.Flags().StringSliceVar(&FilterCategories, "categories", []string{}, "category ids to keep (see 'list categories')")
	cmd.Flags().BoolVar(&PublishedOnly, "published-only", false, "drop draft articles")
}

func runFetch(cmd *cobra.Command) error {
	ctx := cmd.Context()

	filters, err := filterSetFromFlags()
	if err != nil {
		return err
	}
	if filters.Empty() {
		return fmt.Errorf("cmd: no filters selected; set at least one of --locales, --brands, --categories")
	}

	api, err := newZendeskAPI()
	if err != nil {
		return err
	}

	pipeline := &migrate.PipelineContext{
		Zendesk: api,
		Filters: filters,
		Log:     migrate.NewRunLog(),
		Logger:  log.New(os.Stderr, "", log.LstdFlags),
	}

	if err := pipeline.LoadTables(ctx); err != nil {
		return err
	}

	articles, err := pipeline.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d articles.\n", len(articles))

	exported, err := migrate.WriteRawArticles(ExportDir, articles)
	if err != nil {
		return err
	}
	fmt.Printf("Articles written to %s\n", exported)

	logFile, err := migrate.WriteRunLog(ExportDir, pipeline.Log)
	if err != nil {
		return err
	}
	fmt.Printf("Run log written to %s\n", logFile)

	return nil
}
