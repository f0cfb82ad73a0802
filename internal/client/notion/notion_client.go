package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskline/notion-sync/internal/models"
)

const notionVersion = "2022-06-28"

type Client struct {
	baseUrl    string
	token      string
	databaseID string
	httpClient *http.Client
}

func NewClient(token, databaseID string) *Client {
	return &Client{
		baseUrl:    "https://api.notion.com/v1",
		token:      token,
		databaseID: databaseID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePage creates one page in the configured Notion database and returns
// its id. The call is made exactly once; every failure mode, including a
// timeout, comes back as a *RemoteError and must be treated as "page not
// created" by the caller.
func (c *Client) CreatePage(ctx context.Context, task models.Task) (string, error) {
	reqBody := CreatePageRequest{
		Parent:     Parent{DatabaseID: c.databaseID},
		Properties: PageProperties(task),
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &RemoteError{Err: fmt.Errorf("marshal create page request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseUrl+"/pages", bytes.NewBuffer(body))
	if err != nil {
		return "", &RemoteError{Err: fmt.Errorf("build request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RemoteError{Err: fmt.Errorf("create page: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", &RemoteError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read error body: %w", err)}
		}

		var apiErr APIError
		if err := json.Unmarshal(errorBody, &apiErr); err != nil || apiErr.Message == "" {
			return "", &RemoteError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}
		return "", &RemoteError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RemoteError{Err: fmt.Errorf("read response body: %w", err)}
	}

	var pageResp CreatePageResponse
	if err := json.Unmarshal(responseBody, &pageResp); err != nil {
		return "", &RemoteError{Err: fmt.Errorf("parse create page response: %w", err)}
	}
	if pageResp.Id == "" {
		return "", &RemoteError{Err: fmt.Errorf("create page response missing id")}
	}

	return pageResp.Id, nil
}
