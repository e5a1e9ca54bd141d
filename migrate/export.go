package migrate

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/birdcage/zendesk-ada/ada"
	"github.com/birdcage/zendesk-ada/zendesk"
	"github.com/mitchellh/go-homedir"
)

// Export files carry a timestamp so repeated runs don't clobber each other.
const exportStamp = "20060102_150405"

// WriteRawArticles dumps the fetched article list, brand annotations
// included, as indented JSON.  Returns the path written.
func WriteRawArticles(dir string, articles []zendesk.Article) (string, error) {
	return writeExport(dir, "zendesk_articles", articles)
}

// WritePayload dumps the transformed Ada payload.
func WritePayload(dir string, articles []ada.Article) (string, error) {
	return writeExport(dir, "ada_payload", articles)
}

// WriteRunLog dumps the run's audit trail.
func WriteRunLog(dir string, runlog *RunLog) (string, error) {
	return writeExport(dir, "api_logs", runlog.Entries())
}

func writeExport(dir string, prefix string, v any) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("migrate: unable to expand homedir: %w", err)
	}

	stat, err := os.Stat(expanded)
	if err != nil {
		return "", fmt.Errorf("migrate: cannot stat '%s': %w", expanded, err)
	}
	if !stat.IsDir() {
		return "", fmt.Errorf("migrate: export path not a directory: '%s'", expanded)
	}

	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("migrate: couldn't marshal export: %w", err)
	}

	filename := path.Join(expanded, fmt.Sprintf("%s_%s.json", prefix, time.Now().Format(exportStamp)))
	if err := os.WriteFile(filename, encoded, 0644); err != nil {
		return "", fmt.Errorf("migrate: couldn't write %s: %w", filename, err)
	}

	return filename, nil
}
