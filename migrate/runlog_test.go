package migrate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogRecordsTimestampedEntries(t *testing.T) {
	log := NewRunLog()
	log.now = func() time.Time {
		return time.Date(2024, 6, 1, 14, 30, 5, 0, time.UTC)
	}

	log.Add("fetch articles", StatusSuccess, "https://acme.zendesk.com", "42 articles")

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "14:30:05", entries[0].Timestamp)
	assert.Equal(t, "fetch articles", entries[0].Action)
	assert.Equal(t, StatusSuccess, entries[0].Status)
	assert.Equal(t, "https://acme.zendesk.com", entries[0].Endpoint)
	assert.Equal(t, "42 articles", entries[0].Details)
}

func TestRunLogTruncatesLongDetails(t *testing.T) {
	log := NewRunLog()
	log.Add("upload article", StatusError, "", strings.Repeat("x", 600))

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Details, maxDetailLen+3)
	assert.True(t, strings.HasSuffix(entries[0].Details, "..."))
}

func TestRunLogNilIsSafe(t *testing.T) {
	var log *RunLog
	log.Add("anything", StatusInfo, "", "goes nowhere")
	assert.Nil(t, log.Entries())
}
