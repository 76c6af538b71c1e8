package model

// CountSentinel marks a view or like count the upstream statistics call did
// not supply. The storage boundary coerces it to NULL.
const CountSentinel = "N/A"

// VideoData is one normalized listing row joined with its statistics, as
// produced by the ingestion pipeline. Counts stay strings until the storage
// boundary so the sentinel can flow through untouched.
type VideoData struct {
	ID         string
	Title      string
	UploadDate string
	URL        string
	ViewCount  string
	LikeCount  string
	Duration   string
}

// VideoRecord is a row in the contents table. ViewCount and LikeCount are
// nullable: the upstream statistics call can omit either, and the sentinel
// is coerced to NULL at the storage boundary.
type VideoRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	UploadDate      string `json:"upload_date"`
	VideoURL        string `json:"video_url"`
	ViewCount       *int64 `json:"view_count"`
	LikeCount       *int64 `json:"like_count"`
	Duration        string `json:"duration"`
	ChannelCategory int    `json:"channel_category"`
}

// VideoView is the API shape of a search hit: upload_date reformatted for
// display, video_url rewritten to the embed form, and the channel surrogate
// key resolved to its display name.
type VideoView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	UploadDate      string `json:"upload_date"`
	VideoURL        string `json:"video_url"`
	ViewCount       *int64 `json:"view_count"`
	LikeCount       *int64 `json:"like_count"`
	Duration        string `json:"duration"`
	ChannelCategory string `json:"channel_category"`
}

// SearchResponse is the /search response envelope. CurrentDisplayCount is a
// running total for infinite scroll: rows returned so far including this
// page's offset.
type SearchResponse struct {
	Activities          []VideoView `json:"activities"`
	Total               int         `json:"total"`
	CurrentDisplayCount int         `json:"current_display_count"`
}
