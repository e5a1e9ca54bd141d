package migrate

import (
	"testing"

	"github.com/birdcage/zendesk-ada/zendesk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	articles := []zendesk.Article{
		{ID: 1, Locale: "en"},
		{ID: 2, Locale: "en"},
		{ID: 1, Locale: "fr"}, // same article via another branch
		{ID: 3, Locale: "en"},
		{ID: 2, Locale: "fr"},
	}

	unique := Dedupe(articles)

	require.Len(t, unique, 3)
	assert.Equal(t, int64(1), unique[0].ID)
	assert.Equal(t, "en", unique[0].Locale, "the branch that ran first decides the variant")
	assert.Equal(t, int64(2), unique[1].ID)
	assert.Equal(t, int64(3), unique[2].ID)
}

func TestDedupeEmptyInput(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, Dedupe([]zendesk.Article{}))
}
