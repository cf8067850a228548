package irc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	msgparser "github.com/riverfjs/msgparser-go"
)

// ErrBadEmote is wrapped by every error ParseEmotes reports.
var ErrBadEmote = errors.New("bad emote range")

// Emotes returns the emote ranges of the message's "emotes" tag.
func (m *Message) Emotes() ([]msgparser.Emote, error) {
	return ParseEmotes(m.Tags["emotes"], m.Text)
}

// ParseEmotes converts a Twitch emotes tag such as
//
//	25:0-4,12-16/1902:6-10
//
// into byte ranges of text, sorted by start. Tag positions are inclusive and
// count Unicode code points. Entries that cannot be used (malformed, outside
// text, overlapping an earlier range) are skipped and reported together in
// the returned error; the remaining ranges are always returned and are safe
// to pass to msgparser.ParseParts.
func ParseEmotes(tag, text string) ([]msgparser.Emote, error) {
	if tag == "" {
		return nil, nil
	}

	offsets := runeOffsets(text)
	var (
		emotes []msgparser.Emote
		errs   error
	)
	for _, entry := range strings.Split(tag, "/") {
		if entry == "" {
			continue
		}
		id, ranges, ok := strings.Cut(entry, ":")
		if !ok || id == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: entry %q has no id", ErrBadEmote, entry))
			continue
		}
		for _, r := range strings.Split(ranges, ",") {
			first, last, err := parseRange(r)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: emote %s: %v", ErrBadEmote, id, err))
				continue
			}
			if last >= len(offsets)-1 {
				errs = multierr.Append(errs, fmt.Errorf("%w: emote %s: range %d-%d outside message of %d code points",
					ErrBadEmote, id, first, last, len(offsets)-1))
				continue
			}
			emotes = append(emotes, msgparser.Emote{
				ID:    id,
				Start: offsets[first],
				End:   offsets[last+1],
			})
		}
	}

	sort.SliceStable(emotes, func(i, j int) bool {
		return emotes[i].Start < emotes[j].Start
	})

	kept := emotes[:0]
	end := 0
	for _, e := range emotes {
		if e.Start < end {
			errs = multierr.Append(errs, fmt.Errorf("%w: emote %s at %d overlaps previous range ending at %d",
				ErrBadEmote, e.ID, e.Start, end))
			continue
		}
		kept = append(kept, e)
		end = e.End
	}
	return kept, errs
}

// parseRange parses an inclusive "first-last" pair.
func parseRange(r string) (first, last int, err error) {
	a, b, ok := strings.Cut(r, "-")
	if !ok {
		return 0, 0, fmt.Errorf("range %q is not first-last", r)
	}
	if first, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", r, err)
	}
	if last, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", r, err)
	}
	if first < 0 || last < first {
		return 0, 0, fmt.Errorf("range %q is reversed", r)
	}
	return first, last, nil
}

// runeOffsets returns the byte offset of every code point of text, followed
// by len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
