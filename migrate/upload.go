package migrate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/birdcage/zendesk-ada/ada"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	// RateLimitCooldown is how long to sit out after a 429 before retrying
	// the same article.
	RateLimitCooldown = 60 * time.Second

	// UploadDelay is the courtesy pause between consecutive uploads.
	UploadDelay = 100 * time.Millisecond
)

// Uploader pushes transformed articles to Ada one at a time, in input order.
// Rate limiting is retried on the same article for as long as it takes; any
// other failure is charged to that article alone and the batch moves on.
type Uploader struct {
	API *ada.API

	Log    *RunLog
	Logger *log.Logger

	// Progress draws an mpb bar on stderr while uploading.
	Progress bool

	Cooldown time.Duration
	Delay    time.Duration

	sleep func(time.Duration)
}

func NewUploader(api *ada.API, runlog *RunLog, logger *log.Logger) *Uploader {
	return &Uploader{
		API:      api,
		Log:      runlog,
		Logger:   logger,
		Cooldown: RateLimitCooldown,
		Delay:    UploadDelay,
		sleep:    time.Sleep,
	}
}

// UploadSummary is the aggregate outcome of one batch, reported only after
// the last article has been dealt with.
type UploadSummary struct {
	Success int
	Errors  int
	Total   int
}

func (u *Uploader) UploadAll(ctx context.Context, articles []ada.Article) UploadSummary {
	summary := UploadSummary{Total: len(articles)}

	var bar *mpb.Bar
	var progress *mpb.Progress
	if u.Progress {
		progress = mpb.New(mpb.WithWidth(64))
		bar = progress.AddBar(int64(len(articles)),
			mpb.PrependDecorators(
				decor.Name("uploading:", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("(%d/%d) "),
				decor.NewPercentage("%d"),
			),
		)
	}

	u.Log.Add("upload articles", StatusInfo, "",
		fmt.Sprintf("starting upload of %d articles", len(articles)))

	for i, article := range articles {
		if u.uploadOne(ctx, article, i+1, len(articles)) {
			summary.Success++
		} else {
			summary.Errors++
		}
		if bar != nil {
			bar.Increment()
		}
	}

	if progress != nil {
		progress.Wait()
	}

	u.Log.Add("upload articles", StatusSuccess, "",
		fmt.Sprintf("upload completed: %d success, %d errors", summary.Success, summary.Errors))
	return summary
}

// uploadOne pushes a single article, waiting out 429s until the API gives a
// definitive answer.  Returns true on success.
func (u *Uploader) uploadOne(ctx context.Context, article ada.Article, n int, total int) bool {
	for {
		err := u.API.PushArticle(ctx, article)
		u.pause(u.Delay)

		if err == nil {
			u.Log.Add("upload article", StatusSuccess, "",
				fmt.Sprintf("(%d/%d) %s", n, total, truncateRunes(article.Name, 40)))
			return true
		}

		var apiErr *ada.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			u.Log.Add("upload article", StatusWarning, "",
				fmt.Sprintf("rate limited on article %d, retrying after cooldown", n))
			u.logf("rate limited while uploading article %d/%d, waiting %s...", n, total, u.Cooldown)
			u.pause(u.Cooldown)
			continue
		}

		u.Log.Add("upload article", StatusError, "",
			fmt.Sprintf("(%d/%d) %s: %v", n, total, truncateRunes(article.Name, 30), err))
		u.logf("failed to upload article %d/%d %q: %v", n, total, article.Name, err)
		return false
	}
}

func (u *Uploader) pause(d time.Duration) {
	if d > 0 {
		u.sleep(d)
	}
}

func (u *Uploader) logf(format string, a ...any) {
	if u.Logger != nil {
		u.Logger.Printf(format, a...)
	}
}
