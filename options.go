package msgparser

// ConvertOptions holds options for rendering parts.
type ConvertOptions struct {
	Config *RenderConfig

	owned bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
			opts.owned = false
		}
	}
}

// WithCustomEmoji maps an emote id to a Telegram custom emoji id.
func WithCustomEmoji(emoteID, customEmojiID string) Option {
	return func(opts *ConvertOptions) {
		opts.own()
		opts.Config.CustomEmoji[emoteID] = customEmojiID
	}
}

// WithEmotePlaceholder sets the text custom emoji entities are attached to.
func WithEmotePlaceholder(placeholder string) Option {
	return func(opts *ConvertOptions) {
		opts.own()
		opts.Config.EmotePlaceholder = placeholder
	}
}

// WithEmoteURL sets the emote image URL used by RenderHTML. EmoteIDToken
// ("{id}") in template is replaced by the emote id.
func WithEmoteURL(template string) Option {
	return func(opts *ConvertOptions) {
		opts.own()
		opts.Config.EmoteURL = template
	}
}

// WithMaxInlineCodeLines sets the line count above which Telegramify
// extracts a codeblock as a file.
func WithMaxInlineCodeLines(n int) Option {
	return func(opts *ConvertOptions) {
		opts.own()
		opts.Config.MaxInlineCodeLines = n
	}
}

// own replaces a shared config with a private copy before it is modified.
func (o *ConvertOptions) own() {
	if !o.owned {
		o.Config = o.Config.Clone()
		o.owned = true
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
