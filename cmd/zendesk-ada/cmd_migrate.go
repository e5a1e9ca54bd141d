/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/birdcage/zendesk-ada/migrate"
	"github.com/spf13/cobra"
	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

var migrateUsage = strings.TrimSpace(`
Run the whole pipeline: fetch articles matching the selected filters,
convert them to Markdown, and upload them into an Ada knowledge source.
Pick a destination with --source-id, or have one made with --create-source.
`)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy filtered Help Center articles into Ada",
	Long:  migrateUsage,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

var (
	SourceID         string
	CreateSource     string
	LanguageOverride string
	DryRun           bool
	WithVCR          bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	addFilterFlags(migrateCmd)

	migrateCmd.Flags().StringVar(&SourceID, "source-id", "", "id of an existing Ada knowledge source (see 'list sources')")
	migrateCmd.Flags().StringVar(&CreateSource, "create-source", "", "create a new knowledge source with this name and upload into it")
	migrateCmd.Flags().StringVar(&LanguageOverride, "language-override", "", "force this language onto every uploaded article")
	migrateCmd.Flags().BoolVar(&DryRun, "dry-run", false, "transform but don't upload; export the payload instead")
	migrateCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
}

func runMigrate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	filters, err := filterSetFromFlags()
	if err != nil {
		return err
	}
	if filters.Empty() {
		return fmt.Errorf("cmd: no filters selected; set at least one of --locales, --brands, --categories")
	}

	if !DryRun && SourceID == "" && CreateSource == "" {
		return fmt.Errorf("cmd: pick a destination with --source-id or --create-source")
	}

	zendeskAPI, err := newZendeskAPI()
	if err != nil {
		return err
	}
	adaAPI, err := newAdaAPI()
	if err != nil && !DryRun {
		return err
	}

	if WithVCR {
		// set up VCR recordings.
		opts := &recorder.Options{
			CassetteName:       "fixtures/zendesk-ada-run",
			Mode:               recorder.ModeReplayWithNewEpisodes,
			SkipRequestLatency: true,
			RealTransport:      http.DefaultTransport,
		}
		r, err := recorder.NewWithOptions(opts)
		if err != nil {
			return fmt.Errorf("cmd: couldn't set up go-vcr recording: %w", err)
		}

		defer r.Stop() // Make sure recorder is stopped once done with it

		// Add a hook which removes Authorization headers from all requests
		hook := func(i *cassette.Interaction) error {
			delete(i.Request.Headers, "Authorization")
			return nil
		}
		r.AddHook(hook, recorder.AfterCaptureHook)
		r.SetReplayableInteractions(true)

		vcrClient := r.GetDefaultClient()
		zendeskAPI.Client = vcrClient
		if adaAPI != nil {
			adaAPI.Client = vcrClient
		}
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	pipeline := &migrate.PipelineContext{
		Zendesk: zendeskAPI,
		Ada:     adaAPI,
		Filters: filters,
		Log:     migrate.NewRunLog(),
		Logger:  logger,
	}

	if err := pipeline.LoadTables(ctx); err != nil {
		return err
	}

	articles, err := pipeline.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Println("No articles found with the current filters.")
		return nil
	}
	fmt.Printf("Fetched %d articles.\n", len(articles))

	knowledgeSourceID := SourceID
	if !DryRun && CreateSource != "" {
		knowledgeSourceID, err = adaAPI.CreateKnowledgeSource(ctx, CreateSource)
		if err != nil {
			return err
		}
		fmt.Printf("Created knowledge source %q with id %s.\n", CreateSource, knowledgeSourceID)
	}

	transformer := migrate.NewTransformer(knowledgeSourceID, LanguageOverride)
	batch, err := transformer.TransformAll(articles, pipeline.Log)
	if err != nil {
		return err
	}
	if batch.Skipped > 0 {
		fmt.Printf("Skipped %d articles over the content size limit.\n", batch.Skipped)
	}

	if DryRun {
		exported, err := migrate.WritePayload(ExportDir, batch.Articles)
		if err != nil {
			return err
		}
		fmt.Printf("Dry run: payload for %d articles written to %s\n", len(batch.Articles), exported)
		return writeRunLog(pipeline.Log)
	}

	uploader := migrate.NewUploader(adaAPI, pipeline.Log, logger)
	uploader.Progress = true
	summary := uploader.UploadAll(ctx, batch.Articles)

	fmt.Printf("Upload completed: %d succeeded, %d failed, %d total.\n",
		summary.Success, summary.Errors, summary.Total)

	return writeRunLog(pipeline.Log)
}

func writeRunLog(runlog *migrate.RunLog) error {
	logFile, err := migrate.WriteRunLog(ExportDir, runlog)
	if err != nil {
		return err
	}
	fmt.Printf("Run log written to %s\n", logFile)
	return nil
}
