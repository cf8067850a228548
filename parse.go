package msgparser

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const tripleFence = "```"

// ErrUnsortedEmotes is matched by every *PreconditionError.
var ErrUnsortedEmotes = errors.New("emotes need to be sorted and non-overlapping")

// PreconditionError reports the first emote range that breaks the ordering
// contract of ParseParts. Prev is the zero Emote when Index is 0.
type PreconditionError struct {
	Index int
	Prev  Emote
	Next  Emote
	// OutOfRange is set when Next is not a valid range of the message.
	OutOfRange bool
	MsgLen     int
}

func (e *PreconditionError) Error() string {
	if e.OutOfRange {
		return fmt.Sprintf("%v: emote %d (%q %d..%d) is not a range within the message (len %d)",
			ErrUnsortedEmotes, e.Index, e.Next.ID, e.Next.Start, e.Next.End, e.MsgLen)
	}
	return fmt.Sprintf("%v: emote %d (%q %d..%d) starts before %q ends at %d",
		ErrUnsortedEmotes, e.Index, e.Next.ID, e.Next.Start, e.Next.End, e.Prev.ID, e.Prev.End)
}

func (e *PreconditionError) Unwrap() error {
	return ErrUnsortedEmotes
}

// checkEmotes validates that emotes are sorted by start, pairwise
// non-overlapping and inside msg.
func checkEmotes(msg string, emotes []Emote) error {
	pos := 0
	var prev Emote
	for i, e := range emotes {
		if e.Start < 0 || e.Start > e.End || e.End > len(msg) {
			return &PreconditionError{Index: i, Prev: prev, Next: e, OutOfRange: true, MsgLen: len(msg)}
		}
		if e.Start < pos {
			return &PreconditionError{Index: i, Prev: prev, Next: e}
		}
		pos = e.End
		prev = e
	}
	return nil
}

// ParseParts splits msg into text, emote and codeblock parts.
//
// emotes must be sorted by Start and must not overlap; otherwise ParseParts
// returns a *PreconditionError and no parts. Codeblocks are delimited by one
// or three backticks and take priority over emotes: an emote starting inside
// a codeblock produces no part. A codeblock without a closing fence runs to
// the end of msg.
func ParseParts(msg string, emotes []Emote) ([]Part, error) {
	if err := checkEmotes(msg, emotes); err != nil {
		return nil, err
	}

	var parts []Part
	cursor := 0
	next := 0 // index of the next emote not yet taken as candidate
	var cur *Emote

	for cursor < len(msg) {
		// Drop candidates the cursor already passed; a codeblock consumed them.
		if cur != nil && cur.Start < cursor {
			logSwallowed(*cur, cursor)
			cur = nil
		}
		for cur == nil && next < len(emotes) {
			if emotes[next].Start >= cursor {
				cur = &emotes[next]
			} else {
				logSwallowed(emotes[next], cursor)
			}
			next++
		}

		tick := strings.IndexByte(msg[cursor:], '`')
		switch {
		case tick >= 0 && (cur == nil || cursor+tick < cur.Start):
			textEnd := cursor + tick
			if textEnd > cursor {
				parts = append(parts, TextPart(msg, cursor, textEnd))
			}
			codeEnd := fenceEnd(msg, textEnd)
			parts = append(parts, CodeblockPart(msg, textEnd, codeEnd))
			cursor = codeEnd

		case cur != nil:
			if cur.Start > cursor {
				parts = append(parts, TextPart(msg, cursor, cur.Start))
			}
			parts = append(parts, EmotePart(*cur))
			cursor = cur.End
			cur = nil

		default:
			parts = append(parts, TextPart(msg, cursor, len(msg)))
			cursor = len(msg)
		}
	}
	if cur != nil && cur.Start < cursor {
		logSwallowed(*cur, cursor)
	}
	for _, e := range emotes[next:] {
		if e.Start < cursor {
			logSwallowed(e, cursor)
		}
	}

	return parts, nil
}

func logSwallowed(e Emote, cursor int) {
	Logger().Debug("emote swallowed by codeblock",
		zap.String("emote", e.ID),
		zap.Int("start", e.Start),
		zap.Int("cursor", cursor))
}

// MustParseParts is like ParseParts but panics if emotes are unsorted or
// overlapping.
func MustParseParts(msg string, emotes []Emote) []Part {
	parts, err := ParseParts(msg, emotes)
	if err != nil {
		panic(err)
	}
	return parts
}

// fenceEnd returns the end offset of the codeblock whose opening backtick is
// at start. Unterminated blocks end at len(msg).
func fenceEnd(msg string, start int) int {
	fence := "`"
	if strings.HasPrefix(msg[start:], tripleFence) {
		fence = tripleFence
	}
	from := start + len(fence)
	k := strings.Index(msg[from:], fence)
	if k < 0 {
		return len(msg)
	}
	return from + k + len(fence)
}

// Reconstruct joins the source extents of parts back into a message. For
// parts returned by ParseParts(msg, ...) the result equals msg.
func Reconstruct(msg string, parts []Part) string {
	var b strings.Builder
	b.Grow(len(msg))
	for _, p := range parts {
		b.WriteString(msg[p.Start:p.End])
	}
	return b.String()
}

// DroppedEmotes returns the emotes that have no corresponding emote part in
// parts. These are the emotes starting inside a codeblock, plus zero-width
// emotes at len(msg), which the scan never reaches.
func DroppedEmotes(emotes []Emote, parts []Part) []Emote {
	var dropped []Emote
	j := 0
	for _, e := range emotes {
		for j < len(parts) && (parts[j].Kind != PartEmote || parts[j].End < e.Start) {
			j++
		}
		if j < len(parts) && parts[j].EmoteID == e.ID && parts[j].Start == e.Start && parts[j].End == e.End {
			j++
			continue
		}
		dropped = append(dropped, e)
	}
	return dropped
}
