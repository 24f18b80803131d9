package models

// Discord decimal color codes for embed accents, one per severity tier.
const (
	ColorGray   = 9807270
	ColorRed    = 15145498
	ColorYellow = 15646767
	ColorBlue   = 7782616
)

// DiscordMessage is the outbound webhook payload. The field names mirror the
// Discord webhook embed schema byte-for-byte.
type DiscordMessage struct {
	Content string         `json:"content"`
	Embeds  []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Color       int                 `json:"color"`
	Fields      []DiscordEmbedField `json:"fields"`
	Author      DiscordEmbedAuthor  `json:"author"`
}

type DiscordEmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type DiscordEmbedAuthor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
