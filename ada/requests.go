package ada

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
)

const sourceIDLength = 15

const sourceIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ListKnowledgeSources fetches the bot's existing knowledge sources.
func (a *API) ListKnowledgeSources(ctx context.Context) ([]KnowledgeSource, error) {
	ep, err := a.resolveEndpoint("/api/v2/knowledge/sources/")
	if err != nil {
		return nil, err
	}

	body, err := a.request(ctx, http.MethodGet, ep, nil)
	if err != nil {
		return nil, fmt.Errorf("ada: couldn't list knowledge sources: %w", err)
	}

	var resp struct {
		Data []KnowledgeSource `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ada: couldn't parse json response: %w", err)
	}

	return resp.Data, nil
}

// CreateKnowledgeSource registers a new knowledge source under a random
// 15-character id and returns the id the API settled on.  The API has been
// seen answering both {"data":{"id":...}} and {"id":...}; either is
// accepted, and if neither field is present we trust the id we generated.
func (a *API) CreateKnowledgeSource(ctx context.Context, name string) (string, error) {
	ep, err := a.resolveEndpoint("/api/v2/knowledge/sources/")
	if err != nil {
		return "", err
	}

	generated := randomSourceID()
	payload := KnowledgeSource{ID: generated, Name: name}

	body, err := a.request(ctx, http.MethodPost, ep, payload)
	if err != nil {
		return "", fmt.Errorf("ada: couldn't create knowledge source %q: %w", name, err)
	}

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("ada: couldn't parse json response: %w", err)
	}

	switch {
	case resp.Data.ID != "":
		return resp.Data.ID, nil
	case resp.ID != "":
		return resp.ID, nil
	default:
		return generated, nil
	}
}

// PushArticle uploads one article through the bulk endpoint, which takes a
// JSON array of exactly one element per call.  A nil error means 2xx; a
// failure is an *APIError the caller can inspect for rate limiting.
func (a *API) PushArticle(ctx context.Context, article Article) error {
	ep, err := a.resolveEndpoint("/api/v2/knowledge/bulk/articles/")
	if err != nil {
		return err
	}

	if article.TagIDs == nil {
		article.TagIDs = []string{}
	}

	if _, err := a.request(ctx, http.MethodPost, ep, []Article{article}); err != nil {
		return err
	}
	return nil
}

func randomSourceID() string {
	b := make([]byte, sourceIDLength)
	for i := range b {
		b[i] = sourceIDAlphabet[rand.Intn(len(sourceIDAlphabet))]
	}
	return string(b)
}

func (a *API) resolveEndpoint(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("ada: failed to parse endpoint ref: %w", err)
	}

	return a.BaseURI.ResolveReference(ref), nil
}

func (a *API) request(ctx context.Context, method string, u *url.URL, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("ada: couldn't encode request payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("ada: couldn't instantiate http request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json, */*")

	response, err := a.Client.Do(req)
	if err != nil {
		return nil, &APIError{URL: u.String(), Err: err}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		response.Body.Close()
		return nil, &APIError{URL: u.String(), Err: err}
	}

	if err := response.Body.Close(); err != nil {
		return nil, fmt.Errorf("ada: couldn't close response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	return nil, &APIError{
		Status: response.StatusCode,
		Body:   string(body),
		URL:    u.String(),
	}
}
