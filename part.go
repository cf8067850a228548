package msgparser

import (
	"fmt"
	"strings"
)

// PartKind represents the type of a message part.
type PartKind int

const (
	// PartText is a plain run of message text.
	PartText PartKind = iota
	// PartEmote is a reference to an emote by identifier.
	PartEmote
	// PartCodeblock is a backtick-fenced code block, fences included.
	PartCodeblock
)

// String returns the string representation of PartKind.
func (k PartKind) String() string {
	switch k {
	case PartText:
		return "text"
	case PartEmote:
		return "emote"
	case PartCodeblock:
		return "codeblock"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its name.
func (k PartKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *PartKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*k = PartText
	case "emote":
		*k = PartEmote
	case "codeblock":
		*k = PartCodeblock
	default:
		return fmt.Errorf("unknown part kind %q", b)
	}
	return nil
}

// Emote marks an emote occurrence in a message as the half-open byte range
// [Start, End). ID is opaque to this package.
type Emote struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Len returns the number of message bytes covered by the emote.
func (e Emote) Len() int {
	return e.End - e.Start
}

// Part is one typed span of a segmented message.
//
// Start and End are the byte extent of the part in the source message. For
// text and codeblock parts Text is exactly message[Start:End]. Emote parts
// carry only EmoteID; their covered bytes are not repeated in Text.
//
// Text shares memory with the message it was cut from.
type Part struct {
	Kind    PartKind `json:"kind"`
	Text    string   `json:"text,omitempty"`
	EmoteID string   `json:"emote,omitempty"`
	Start   int      `json:"start"`
	End     int      `json:"end"`
}

// TextPart returns a text part for msg[start:end].
func TextPart(msg string, start, end int) Part {
	return Part{Kind: PartText, Text: msg[start:end], Start: start, End: end}
}

// CodeblockPart returns a codeblock part for msg[start:end].
func CodeblockPart(msg string, start, end int) Part {
	return Part{Kind: PartCodeblock, Text: msg[start:end], Start: start, End: end}
}

// EmotePart returns the part emitted for e.
func EmotePart(e Emote) Part {
	return Part{Kind: PartEmote, EmoteID: e.ID, Start: e.Start, End: e.End}
}

// Fence returns the width of the opening fence of a codeblock part: 3 for
// triple backticks, 1 otherwise. It returns 0 for other kinds.
func (p Part) Fence() int {
	if p.Kind != PartCodeblock {
		return 0
	}
	if strings.HasPrefix(p.Text, tripleFence) {
		return 3
	}
	return 1
}

// Open reports whether a codeblock part ran to the end of the message
// without a closing fence.
func (p Part) Open() bool {
	n := p.Fence()
	if n == 0 {
		return false
	}
	fence := p.Text[:n]
	// The closer must not overlap the opener.
	return len(p.Text) < 2*n || !strings.HasSuffix(p.Text[n:], fence)
}

// Code returns the content between the fences of a codeblock part.
func (p Part) Code() string {
	n := p.Fence()
	if n == 0 {
		return ""
	}
	body := p.Text[n:]
	if !p.Open() {
		body = body[:len(body)-n]
	}
	return body
}
