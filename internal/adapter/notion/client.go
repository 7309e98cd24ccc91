package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"notionary/internal/domain"
	"notionary/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"

	// Block children are fetched in a single call of up to this many blocks.
	blockPageSize = 100

	// Concurrent per-page content fetches are bounded to keep the fan-out
	// polite toward the API.
	maxConcurrentFetches = 8
)

// textBlockTypes are the block kinds that contribute plain text to a note.
var textBlockTypes = map[string]struct{}{
	"paragraph":          {},
	"heading_1":          {},
	"heading_2":          {},
	"bulleted_list_item": {},
	"numbered_list_item": {},
}

// Client reads pages of one Notion database and reduces each to a
// domain.Note. It implements domain.NoteSource. All operations are
// read-only.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	databaseID string
}

// NewClient creates a Notion client for the given database.
func NewClient(token, databaseID string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("notion token cannot be empty")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("notion database id cannot be empty")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		databaseID: databaseID,
	}, nil
}

// FetchNotes lists every page of the database and fetches each page's text
// content concurrently. Results are joined in the database's page order, not
// arrival order. A failed content fetch degrades that note to empty content
// instead of aborting the batch.
func (c *Client) FetchNotes(ctx context.Context) ([]domain.Note, error) {
	pages, err := c.queryDatabase(ctx)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(err)
	}

	notes := make([]domain.Note, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, pg := range pages {
		i, pg := i, pg
		notes[i] = domain.Note{
			Topic: pg.title(),
			Tags:  pg.tags(),
		}
		g.Go(func() error {
			content, err := c.fetchPageContent(gctx, pg.ID)
			if err != nil {
				// Non-fatal: the note keeps an empty body.
				logger.Get().Warn("Failed to fetch page content",
					zap.String("page_id", pg.ID),
					zap.Error(domain.NewPartialContentError(pg.ID, err)),
				)
				return nil
			}
			notes[i].Content = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewSourceUnavailableError(err)
	}

	logger.Get().Info("Fetched notes from Notion", zap.Int("pages", len(notes)))
	return notes, nil
}

// queryDatabase lists the database's pages. Notion requires a defined JSON
// body even if empty.
func (c *Client) queryDatabase(ctx context.Context) ([]page, error) {
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}

	var result struct {
		Results []page `json:"results"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// fetchPageContent fetches the page's child blocks and concatenates the
// plain text of text-bearing blocks with newline separators, preserving
// source order.
func (c *Client) fetchPageContent(ctx context.Context, pageID string) (string, error) {
	url := fmt.Sprintf("%s/blocks/%s/children?page_size=%d", c.baseURL, pageID, blockPageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	var result struct {
		Results []block `json:"results"`
	}
	if err := c.do(req, &result); err != nil {
		return "", err
	}

	lines := make([]string, 0, len(result.Results))
	for _, b := range result.Results {
		if _, ok := textBlockTypes[b.Type]; !ok {
			continue
		}
		lines = append(lines, b.plainText())
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("notion api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Static assertion that Client implements the note source port.
var _ domain.NoteSource = (*Client)(nil)
