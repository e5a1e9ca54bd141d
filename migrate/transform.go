package migrate

import (
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	mdplugin "github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/birdcage/zendesk-ada/ada"
	"github.com/birdcage/zendesk-ada/zendesk"
)

const (
	// IDPrefix namespaces destination ids so re-runs upsert instead of
	// colliding with articles from other sources.
	IDPrefix = "zd_"

	MaxNameLength = 255

	// MaxContentBytes is Ada's 100KB content limit, measured on the UTF-8
	// encoding.  Exactly 102400 bytes is still acceptable.
	MaxContentBytes = 100 * 1024

	DefaultLanguage = "en"
)

// Transformer converts raw Help Center articles into Ada's article schema.
// The zero value is not usable; construct with NewTransformer.
type Transformer struct {
	KnowledgeSourceID string

	// LanguageOverride, when non-empty, replaces every article's own
	// locale for the whole batch.
	LanguageOverride string

	converter *md.Converter
}

func NewTransformer(knowledgeSourceID string, languageOverride string) *Transformer {
	converter := md.NewConverter("", true, nil)
	// Github flavoured Markdown knows about tables 👍 and keeps link markup.
	converter.Use(mdplugin.GitHubFlavored())

	return &Transformer{
		KnowledgeSourceID: knowledgeSourceID,
		LanguageOverride:  languageOverride,
		converter:         converter,
	}
}

// BatchResult is what one transformation pass produced: the converted
// articles, and how many were skipped for oversize content.
type BatchResult struct {
	Articles []ada.Article
	Skipped  int
}

// TransformAll converts a batch, skipping (and counting) articles whose
// converted content exceeds the size limit.
func (t *Transformer) TransformAll(articles []zendesk.Article, log *RunLog) (BatchResult, error) {
	result := BatchResult{
		Articles: make([]ada.Article, 0, len(articles)),
	}

	for _, a := range articles {
		transformed, ok, err := t.Transform(a)
		if err != nil {
			return BatchResult{}, fmt.Errorf("migrate: couldn't transform article %d: %w", a.ID, err)
		}
		if !ok {
			result.Skipped++
			log.Add("format articles", StatusWarning, "",
				fmt.Sprintf("article %q exceeds %dKB, skipped", truncateRunes(a.Title, 30), MaxContentBytes/1024))
			continue
		}
		result.Articles = append(result.Articles, transformed)
	}

	log.Add("format articles", StatusSuccess, "",
		fmt.Sprintf("formatted %d articles, skipped %d", len(result.Articles), result.Skipped))
	return result, nil
}

// Transform converts one article.  ok is false when the article was skipped
// for oversize content; that is a deliberate outcome, not an error.
func (t *Transformer) Transform(a zendesk.Article) (ada.Article, bool, error) {
	content, err := t.convertBody(a.Body)
	if err != nil {
		return ada.Article{}, false, err
	}

	if len(content) > MaxContentBytes {
		return ada.Article{}, false, nil
	}

	return ada.Article{
		ID:                fmt.Sprintf("%s%d", IDPrefix, a.ID),
		Name:              truncateRunes(a.Title, MaxNameLength),
		Content:           content,
		KnowledgeSourceID: t.KnowledgeSourceID,
		URL:               correctedURL(a),
		TagIDs:            []string{},
		Language:          t.language(a),
	}, true, nil
}

// convertBody renders the HTML body to Markdown.  Non-empty output is
// normalised to end in one blank line, so transforming the same article
// twice is byte-identical regardless of how the converter trims.
func (t *Transformer) convertBody(body string) (string, error) {
	if body == "" {
		return "", nil
	}

	content, err := t.converter.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("migrate: failed to convert to Markdown: %w", err)
	}

	if content == "" {
		return "", nil
	}
	return strings.TrimRight(content, "\n") + "\n\n", nil
}

func (t *Transformer) language(a zendesk.Article) string {
	if override := strings.ToLower(strings.TrimSpace(t.LanguageOverride)); override != "" {
		return override
	}
	if a.Locale != "" {
		return strings.ToLower(a.Locale)
	}
	return DefaultLanguage
}

// correctedURL repairs article URLs that the API reports against the wrong
// domain: when the article carries brand context, the original URL's path,
// query and fragment are re-prefixed onto the brand's canonical base URL.
// Articles without brand context pass through untouched.
func correctedURL(a zendesk.Article) string {
	if a.Brand == nil || a.Brand.BaseURL == "" || a.HTMLURL == "" {
		return a.HTMLURL
	}

	parsed, err := url.Parse(a.HTMLURL)
	if err != nil {
		return a.HTMLURL
	}

	corrected := a.Brand.BaseURL + parsed.Path
	if parsed.RawQuery != "" {
		corrected += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		corrected += "#" + parsed.Fragment
	}
	return corrected
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
