// Package youtube is a minimal client for the YouTube Data API v3 covering
// the three calls the catalog needs: channel video listing, batched video
// statistics, and channel branding lookups.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const baseURL = "https://www.googleapis.com/youtube/v3"

const pageSize = 50

// VideoItem is one listing entry from search.list.
type VideoItem struct {
	VideoID     string
	Title       string
	ChannelID   string
	PublishedAt string
}

// VideoDetail carries the per-video statistics and duration from videos.list.
type VideoDetail struct {
	VideoID   string
	ViewCount string
	LikeCount string
	Duration  string
}

// Page is one page of a channel's video listing.
type Page struct {
	Items         []VideoItem
	NextPageToken string
}

// Client calls the YouTube Data API with a fixed key.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBase is used by tests to point the client at a stub server.
func NewClientWithBase(apiKey, base string) *Client {
	c := NewClient(apiKey)
	c.baseURL = base
	return c
}

// SearchPage fetches one page of a channel's uploads. An empty pageToken
// requests the first page; the returned NextPageToken is empty on the last.
func (c *Client) SearchPage(ctx context.Context, channelID, pageToken string) (*Page, error) {
	params := url.Values{
		"key":        {c.apiKey},
		"channelId":  {channelID},
		"part":       {"snippet"},
		"type":       {"video"},
		"maxResults": {fmt.Sprintf("%d", pageSize)},
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var result struct {
		NextPageToken string `json:"nextPageToken"`
		Items         []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title       string `json:"title"`
				ChannelID   string `json:"channelId"`
				PublishedAt string `json:"publishedAt"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	page := &Page{NextPageToken: result.NextPageToken}
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		page.Items = append(page.Items, VideoItem{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			ChannelID:   item.Snippet.ChannelID,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return page, nil
}

// VideoDetails batch-fetches statistics and contentDetails for a set of
// video ids in a single call.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]VideoDetail, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	params := url.Values{
		"key":  {c.apiKey},
		"id":   {strings.Join(videoIDs, ",")},
		"part": {"statistics,contentDetails"},
	}

	var result struct {
		Items []struct {
			ID         string `json:"id"`
			Statistics struct {
				ViewCount string `json:"viewCount"`
				LikeCount string `json:"likeCount"`
			} `json:"statistics"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/videos", params, &result); err != nil {
		return nil, err
	}

	details := make([]VideoDetail, 0, len(result.Items))
	for _, item := range result.Items {
		details = append(details, VideoDetail{
			VideoID:   item.ID,
			ViewCount: item.Statistics.ViewCount,
			LikeCount: item.Statistics.LikeCount,
			Duration:  item.ContentDetails.Duration,
		})
	}
	return details, nil
}

// ChannelTitle returns a channel's branding title, or "N/A" when the
// channel has no branding entry.
func (c *Client) ChannelTitle(ctx context.Context, channelID string) (string, error) {
	params := url.Values{
		"key":  {c.apiKey},
		"id":   {channelID},
		"part": {"brandingSettings"},
	}

	var result struct {
		Items []struct {
			BrandingSettings struct {
				Channel struct {
					Title string `json:"title"`
				} `json:"channel"`
			} `json:"brandingSettings"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/channels", params, &result); err != nil {
		return "", err
	}

	if len(result.Items) == 0 || result.Items[0].BrandingSettings.Channel.Title == "" {
		return "N/A", nil
	}
	return result.Items[0].BrandingSettings.Channel.Title, nil
}

// ResolveChannelID looks up a channel id from a handle like "@somechannel".
// Returns an empty string when nothing matches.
func (c *Client) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	params := url.Values{
		"key":  {c.apiKey},
		"q":    {handle},
		"part": {"snippet"},
		"type": {"channel"},
	}

	var result struct {
		Items []struct {
			ID struct {
				ChannelID string `json:"channelId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return "", err
	}

	for _, item := range result.Items {
		if item.ID.ChannelID != "" {
			return item.ID.ChannelID, nil
		}
	}
	return "", nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube: %s: HTTP %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube: decode %s: %w", path, err)
	}
	return nil
}
