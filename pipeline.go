package msgparser

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/riverfjs/msgparser-go/internal/converter"
	"github.com/riverfjs/msgparser-go/internal/util"
)

// DefaultMaxMessageLength is Telegram's text message limit in UTF-16 code units.
const DefaultMaxMessageLength = 4096

// ProcessMessage 完整管道：聊天消息 → 可发送的内容列表
//
// 步骤：
//  1. ParseParts 切分消息
//  2. Convert 生成 (text, entities, segments)
//  3. 超过 MaxInlineCodeLines 行的代码块提取为 File，
//     其余文本按 maxMessageLength 拆分为 Text
func ProcessMessage(
	ctx context.Context,
	msg string,
	emotes []Emote,
	maxMessageLength int,
	opts ...Option,
) ([]Content, error) {
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxMessageLength
	}
	options := applyOptions(opts...)

	parts, err := ParseParts(msg, emotes)
	if err != nil {
		return nil, fmt.Errorf("parse parts: %w", err)
	}
	if dropped := DroppedEmotes(emotes, parts); len(dropped) > 0 {
		Logger().Debug("emotes without a part dropped", zap.Int("count", len(dropped)))
	}

	fullText, fullEntities, segments := ConvertWithSegments(msg, parts, WithConfig(options.Config))

	// Only segments that are extracted as files split the text
	extractable := make([]converter.Segment, 0)
	for _, s := range segments {
		if s.Kind != converter.SegmentCodeBlock {
			continue
		}
		if strings.Count(s.RawCode, "\n")+1 > options.Config.MaxInlineCodeLines {
			extractable = append(extractable, s)
		}
	}

	result := make([]Content, 0)
	cursorByte := 0
	cursorUTF16 := 0
	for _, seg := range extractable {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seg.TextStart > cursorByte {
			chunk := fullText[cursorByte:seg.TextStart]
			entities := clipEntities(fullEntities, cursorUTF16, seg.UTF16Start)
			appendTextChunks(&result, chunk, entities, maxMessageLength)
		}
		handleCodeBlockAsFile(&result, seg)
		cursorByte = seg.TextEnd
		cursorUTF16 = seg.UTF16End
	}

	if cursorByte < len(fullText) {
		chunk := fullText[cursorByte:]
		entities := clipEntities(fullEntities, cursorUTF16, UTF16Len(fullText))
		appendTextChunks(&result, chunk, entities, maxMessageLength)
	}

	return result, nil
}

// appendTextChunks 按 max_message_length 拆分文本并追加 Text 对象
func appendTextChunks(result *[]Content, text string, entities []MessageEntity, maxMessageLength int) {
	text, entities = stripNewlinesAdjust(text, entities)
	if strings.TrimSpace(text) == "" {
		return
	}
	for _, chunk := range SplitEntities(text, entities, maxMessageLength) {
		chunkText, chunkEntities := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if chunkText == "" {
			continue
		}
		*result = append(*result, &Text{
			Text:     chunkText,
			Entities: chunkEntities,
			ContentTrace: ContentTrace{
				SourceType: SourceText,
			},
		})
	}
}

// handleCodeBlockAsFile 将大代码块提取为 File
func handleCodeBlockAsFile(result *[]Content, seg converter.Segment) {
	lang := seg.Language
	if lang == "" {
		lang = "txt"
	}
	fileName := util.GetFilename(seg.RawCode, lang)
	Logger().Debug("codeblock extracted as file",
		zap.String("file", fileName),
		zap.Int("bytes", len(seg.RawCode)))

	*result = append(*result, &File{
		FileName: fileName,
		FileData: []byte(seg.RawCode),
		ContentTrace: ContentTrace{
			SourceType: SourceCodeBlock,
			Extra: map[string]interface{}{
				"language": lang,
			},
		},
	})
}
