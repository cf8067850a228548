package types

import "strings"

// MessageEntity 表示 Telegram 消息实体
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// ToDict 将 MessageEntity 转换为 map
func (e MessageEntity) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"type":   e.Type,
		"offset": e.Offset,
		"length": e.Length,
	}
	if e.URL != "" {
		result["url"] = e.URL
	}
	if e.Language != "" {
		result["language"] = e.Language
	}
	if e.CustomEmojiID != "" {
		result["custom_emoji_id"] = e.CustomEmojiID
	}
	return result
}

// EmoteIDToken is replaced by the emote id in RenderConfig.EmoteURL.
const EmoteIDToken = "{id}"

// DefaultEmoteURL is the Twitch CDN template for static emote images.
const DefaultEmoteURL = "https://static-cdn.jtvnw.net/emoticons/v2/" + EmoteIDToken + "/static/dark/1.0"

// RenderConfig 渲染配置
type RenderConfig struct {
	// CustomEmoji maps emote ids to Telegram custom emoji ids. Emotes without
	// an entry are rendered as their source text.
	CustomEmoji map[string]string
	// EmotePlaceholder is the text a custom emoji entity is attached to.
	EmotePlaceholder string
	// EmoteURL is the emote image URL used for HTML output. Every
	// EmoteIDToken in it is replaced by the emote id.
	EmoteURL string
	// MaxInlineCodeLines is the line count above which a codeblock is
	// extracted as a file by the pipeline.
	MaxInlineCodeLines int
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		CustomEmoji:        map[string]string{},
		EmotePlaceholder:   "🙂",
		EmoteURL:           DefaultEmoteURL,
		MaxInlineCodeLines: 50,
	}
}

// EmoteImageURL returns the image URL of the emote with the given id.
func (c *RenderConfig) EmoteImageURL(id string) string {
	return strings.ReplaceAll(c.EmoteURL, EmoteIDToken, id)
}

// Clone returns a copy of c that can be modified without affecting c.
func (c *RenderConfig) Clone() *RenderConfig {
	out := *c
	out.CustomEmoji = make(map[string]string, len(c.CustomEmoji))
	for k, v := range c.CustomEmoji {
		out.CustomEmoji[k] = v
	}
	return &out
}
