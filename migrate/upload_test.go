package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/birdcage/zendesk-ada/ada"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploader(t *testing.T, handler http.HandlerFunc) (*Uploader, func()) {
	t.Helper()

	server := httptest.NewServer(handler)

	api, err := ada.NewAPI("acme-bot", "tok")
	require.NoError(t, err)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	api.BaseURI = base

	u := NewUploader(api, NewRunLog(), nil)
	u.Delay = 0
	return u, server.Close
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func TestUploadAllSequentialSuccess(t *testing.T) {
	var order []string
	u, done := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		var payload []ada.Article
		require.NoError(t, decodeBody(r, &payload))
		require.Len(t, payload, 1, "bulk endpoint takes one article per call")
		order = append(order, payload[0].ID)
		fmt.Fprint(w, `{}`)
	})
	defer done()

	summary := u.UploadAll(context.Background(), []ada.Article{
		{ID: "zd_1", Name: "one"},
		{ID: "zd_2", Name: "two"},
		{ID: "zd_3", Name: "three"},
	})

	assert.Equal(t, UploadSummary{Success: 3, Errors: 0, Total: 3}, summary)
	assert.Equal(t, []string{"zd_1", "zd_2", "zd_3"}, order)
}

func TestUploadRetriesAfterRateLimit(t *testing.T) {
	var attempts int
	u, done := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":"slow down"}`)
			return
		}
		fmt.Fprint(w, `{}`)
	})
	defer done()

	var cooldowns int
	u.sleep = func(d time.Duration) {
		assert.Equal(t, u.Cooldown, d)
		cooldowns++
	}

	summary := u.UploadAll(context.Background(), []ada.Article{{ID: "zd_1", Name: "one"}})

	assert.Equal(t, UploadSummary{Success: 1, Errors: 0, Total: 1}, summary)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, cooldowns, "exactly one cooldown for one 429")
}

func TestUploadChargesFailureToOneArticleOnly(t *testing.T) {
	u, done := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		var payload []ada.Article
		require.NoError(t, decodeBody(r, &payload))
		if payload[0].ID == "zd_2" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"malformed"}`)
			return
		}
		fmt.Fprint(w, `{}`)
	})
	defer done()

	summary := u.UploadAll(context.Background(), []ada.Article{
		{ID: "zd_1", Name: "one"},
		{ID: "zd_2", Name: "bad"},
		{ID: "zd_3", Name: "three"},
	})

	assert.Equal(t, UploadSummary{Success: 2, Errors: 1, Total: 3}, summary)

	var sawError bool
	for _, e := range u.Log.Entries() {
		if e.Status == StatusError {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestUploadCourtesyDelayBetweenUploads(t *testing.T) {
	u, done := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	defer done()

	u.Delay = UploadDelay

	var pauses int
	u.sleep = func(d time.Duration) {
		assert.Equal(t, UploadDelay, d)
		pauses++
	}

	u.UploadAll(context.Background(), []ada.Article{
		{ID: "zd_1"}, {ID: "zd_2"},
	})

	assert.Equal(t, 2, pauses)
}
