package msgparser

import (
	"github.com/riverfjs/msgparser-go/internal/converter"
	"github.com/riverfjs/msgparser-go/internal/parser"
)

// Convert 将消息片段转换为 (plain_text, entities) 用于 Telegram
//
// 参数:
//   - msg: 片段所来自的原始消息
//   - parts: ParseParts(msg, ...) 的结果
//   - opts: 渲染选项
//
// 返回:
//   - string: 纯文本
//   - []MessageEntity: 实体列表（UTF-16 偏移）
func Convert(msg string, parts []Part, opts ...Option) (string, []MessageEntity) {
	text, entities, _ := ConvertWithSegments(msg, parts, opts...)
	return text, entities
}

// ConvertWithSegments 类似 Convert()，但还返回代码块的 segment 信息供管道使用
func ConvertWithSegments(msg string, parts []Part, opts ...Option) (string, []MessageEntity, []converter.Segment) {
	options := applyOptions(opts...)
	walker := converter.NewEventWalker(options.Config)

	for _, p := range parts {
		switch p.Kind {
		case PartText:
			walker.OnText(p.Text)
		case PartEmote:
			walker.OnEmote(p.EmoteID, msg[p.Start:p.End])
		case PartCodeblock:
			walker.OnCode(codeOf(p), p.Fence() == 3)
		}
	}

	return walker.Result()
}

// ConvertMessage 解析消息并转换为 (plain_text, entities)
func ConvertMessage(msg string, emotes []Emote, opts ...Option) (string, []MessageEntity, error) {
	parts, err := ParseParts(msg, emotes)
	if err != nil {
		return "", nil, err
	}
	text, entities := Convert(msg, parts, opts...)
	return text, entities, nil
}

// codeOf returns the fence-stripped content of a codeblock part, with the
// info-string language for fenced blocks. Single-fenced bodies are kept
// verbatim; Markdown code-span space stripping does not apply to chat.
func codeOf(p Part) parser.Code {
	if p.Fence() == 1 {
		return parser.Code{Body: p.Code(), Inline: true}
	}
	if !p.Open() {
		if code, ok := parser.ParseCode(p.Text); ok {
			return code
		}
	}
	return parser.Code{Body: p.Code(), Inline: p.Fence() == 1}
}
