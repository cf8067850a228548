package converter

import (
	"github.com/riverfjs/msgparser-go/internal/buffer"
	"github.com/riverfjs/msgparser-go/internal/parser"
	"github.com/riverfjs/msgparser-go/internal/types"
)

// EventWalker 接收消息片段事件并生成 (text, entities, segments)
type EventWalker struct {
	buf      *buffer.TextBuffer
	entities []types.MessageEntity
	segments []Segment
	config   *types.RenderConfig
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(config *types.RenderConfig) *EventWalker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &EventWalker{
		buf:      buffer.New(),
		entities: make([]types.MessageEntity, 0),
		segments: make([]Segment, 0),
		config:   config,
	}
}

// OnText writes plain text.
func (w *EventWalker) OnText(text string) {
	w.buf.Write(text)
}

// OnEmote writes an emote. source is the emote's text in the original
// message; it is replaced by the placeholder when the emote maps to a
// Telegram custom emoji.
func (w *EventWalker) OnEmote(id, source string) {
	customID, ok := w.config.CustomEmoji[id]
	if !ok || customID == "" || w.config.EmotePlaceholder == "" {
		w.buf.Write(source)
		return
	}
	span := w.buf.Write(w.config.EmotePlaceholder)
	w.entities = append(w.entities, types.MessageEntity{
		Type:          "custom_emoji",
		Offset:        span.UTF16Start,
		Length:        span.UTF16Len(),
		CustomEmojiID: customID,
	})
}

// OnCode writes a codeblock. Triple-fenced blocks become "pre" entities,
// single-fenced ones "code" entities. Empty code produces no entity.
func (w *EventWalker) OnCode(code parser.Code, block bool) {
	span := w.buf.Write(code.Body)

	kind := SegmentInlineCode
	entity := types.MessageEntity{
		Type:   "code",
		Offset: span.UTF16Start,
		Length: span.UTF16Len(),
	}
	if block {
		kind = SegmentCodeBlock
		entity.Type = "pre"
		entity.Language = code.Language
	}
	if entity.Length > 0 {
		w.entities = append(w.entities, entity)
	}

	w.segments = append(w.segments, Segment{
		Kind:       kind,
		TextStart:  span.ByteStart,
		TextEnd:    span.ByteEnd,
		UTF16Start: span.UTF16Start,
		UTF16End:   span.UTF16End,
		Language:   code.Language,
		RawCode:    code.Body,
	})
}

// Result 返回 (text, entities, segments)
func (w *EventWalker) Result() (string, []types.MessageEntity, []Segment) {
	return w.buf.String(), w.entities, w.segments
}
