package model

// Classification is a row in the category facet table. It shares the video's
// primary key and is derived once from the title at ingestion time.
type Classification struct {
	ID                   string `json:"id"`
	CategoryTitle        string `json:"category_title"`
	Players              string `json:"players"`
	Level                string `json:"level"`
	ChannelBrandCategory int    `json:"channel_brand_category"`
}
