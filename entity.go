package msgparser

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/msgparser-go/internal/buffer"
	"github.com/riverfjs/msgparser-go/internal/types"
)

// 导出类型别名
type MessageEntity = types.MessageEntity

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// CountText returns the length Telegram counts for text, in UTF-16 code units.
func CountText(text string) int {
	return UTF16Len(text)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []MessageEntity
}

// findNewlinePositions returns the byte index right after each newline.
func findNewlinePositions(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each byte position.
// Returns a slice where result[i] is the UTF-16 offset at byte position i.
// Positions inside a multi-byte rune carry the offset of that rune.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		for j := pos; j < pos+size; j++ {
			offsets[j] = cum
		}
		cum += buffer.RuneUTF16Len(r)
		pos += size
	}
	offsets[len(text)] = cum
	return offsets
}

// clipEntities returns the entities overlapping [start, end) in UTF-16 units,
// clipped to that window and rebased to start.
func clipEntities(entities []MessageEntity, start, end int) []MessageEntity {
	var out []MessageEntity
	for _, ent := range entities {
		entStart := ent.Offset
		entEnd := ent.Offset + ent.Length
		if entEnd <= start || entStart >= end {
			continue
		}
		clippedStart := max(entStart, start)
		clippedEnd := min(entEnd, end)
		if clippedEnd-clippedStart <= 0 {
			continue
		}
		ent.Offset = clippedStart - start
		ent.Length = clippedEnd - clippedStart
		out = append(out, ent)
	}
	return out
}

// SplitEntities splits (text, entities) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split at newline boundaries. Entities that span a split boundary
// are clipped into both chunks. Hard splits never cut a rune in half.
func SplitEntities(text string, entities []MessageEntity, maxUTF16Len int) []TextChunk {
	if UTF16Len(text) <= maxUTF16Len || maxUTF16Len <= 0 {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	offsets := buildUTF16OffsetTable(text)
	splitPoints := findNewlinePositions(text)

	var ranges [][2]int // [byteStart, byteEnd]
	byteStart := 0
	for byteStart < len(text) {
		budget := offsets[byteStart] + maxUTF16Len
		if offsets[len(text)] <= budget {
			ranges = append(ranges, [2]int{byteStart, len(text)})
			break
		}

		// Last newline split point that fits within budget
		best := -1
		for _, sp := range splitPoints {
			if sp <= byteStart {
				continue
			}
			if offsets[sp] > budget {
				break
			}
			best = sp
		}

		if best == -1 {
			// No newline fits; hard split at the last rune boundary in budget.
			best = byteStart
			for pos := byteStart; pos < len(text); {
				_, size := utf8.DecodeRuneInString(text[pos:])
				if offsets[pos+size] > budget {
					break
				}
				pos += size
				best = pos
			}
			if best == byteStart {
				// Force progress
				_, size := utf8.DecodeRuneInString(text[byteStart:])
				best = byteStart + size
			}
		}

		ranges = append(ranges, [2]int{byteStart, best})
		byteStart = best
	}

	result := make([]TextChunk, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, TextChunk{
			Text:     text[r[0]:r[1]],
			Entities: clipEntities(entities, offsets[r[0]], offsets[r[1]]),
		})
	}
	return result
}

// stripNewlinesAdjust strips leading/trailing newlines from text and adjusts entity offsets.
func stripNewlinesAdjust(text string, entities []MessageEntity) (string, []MessageEntity) {
	stripped := strings.Trim(text, "\n")
	if stripped == text {
		return text, entities
	}
	if stripped == "" {
		return "", nil
	}
	// Newlines are each 1 UTF-16 code unit
	leading := len(text) - len(strings.TrimLeft(text, "\n"))
	return stripped, clipEntities(entities, leading, leading+UTF16Len(stripped))
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []MessageEntity) (string, []MessageEntity) {
	trimmed := strings.TrimFunc(text, isSpace)
	if trimmed == text {
		return text, entities
	}
	if trimmed == "" {
		return "", nil
	}
	startOffset := strings.IndexFunc(text, func(r rune) bool { return !isSpace(r) })
	utf16Start := UTF16Len(text[:startOffset])
	return trimmed, clipEntities(entities, utf16Start, utf16Start+UTF16Len(trimmed))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
