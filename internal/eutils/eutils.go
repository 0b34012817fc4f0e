// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API for PubMed records.
// ESearch resolves a free-text query to PMIDs; EFetch retrieves the full
// article records as XML.
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/pharma-papers/internal/httputil"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Endpoint bases are vars so tests can substitute an httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	defaultFetchBatchSize = 200
	defaultSort           = "relevance"
)

// Client calls the E-utilities endpoints with shared settings.
type Client struct {
	HTTP   *http.Client
	Config types.SearchConfig
}

// ESearch queries PubMed for articles matching term and returns their
// PMIDs, most relevant first. A query with no hits returns an empty
// slice and no error.
func (c *Client) ESearch(ctx context.Context, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("query is empty: provide a search term")
	}

	maxResults := c.Config.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	sort := c.Config.Sort
	if sort == "" {
		sort = defaultSort
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {term},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
		"retmode": {"json"},
		"sort":    {sort},
	}
	c.addIdentityParams(params)

	body, err := c.get(ctx, esearchBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("ESearch: %w", err)
	}
	defer body.Close()

	var er esearchResponse
	if err := json.NewDecoder(body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	return er.Result.IDList, nil
}

// EFetch retrieves the article records for pmids. Requests are chunked
// (FetchBatchSize PMIDs per call) with RequestDelay between chunks so a
// large result set stays within the E-utilities rate limits. A nil or
// empty pmids yields an empty slice.
func (c *Client) EFetch(ctx context.Context, pmids []string) ([]Article, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	batchSize := c.Config.FetchBatchSize
	if batchSize <= 0 {
		batchSize = defaultFetchBatchSize
	}

	var articles []Article
	for start := 0; start < len(pmids); start += batchSize {
		if start > 0 && c.Config.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Config.RequestDelay):
			}
		}

		end := start + batchSize
		if end > len(pmids) {
			end = len(pmids)
		}

		batch, err := c.fetchBatch(ctx, pmids[start:end])
		if err != nil {
			return nil, err
		}
		articles = append(articles, batch...)
	}
	return articles, nil
}

func (c *Client) fetchBatch(ctx context.Context, pmids []string) ([]Article, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	}
	c.addIdentityParams(params)

	body, err := c.get(ctx, efetchBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("EFetch: %w", err)
	}
	defer body.Close()

	set, err := DecodeArticleSet(body)
	if err != nil {
		return nil, fmt.Errorf("parsing EFetch response: %w", err)
	}
	return set, nil
}

// addIdentityParams attaches the API key and contact email when
// configured, per the E-utilities usage policy.
func (c *Client) addIdentityParams(params url.Values) {
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
}

func (c *Client) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
