package model

// Channel is a row in the cid table. ID is the internal surrogate key that
// category.channel_brand_category and contents.channel_category reference.
type Channel struct {
	ID          int    `json:"id"`
	ChannelID   string `json:"cid"`
	ChannelName string `json:"cname"`
	ChannelLink string `json:"clink"`
}

// ChannelResponse is the API shape returned by /get_channels.
type ChannelResponse struct {
	ID          int    `json:"id"`
	ChannelName string `json:"channel_name"`
	ChannelLink string `json:"channel_link"`
}

// LevelResponse is a single entry of the /get_levels response.
type LevelResponse struct {
	Level string `json:"level"`
}
