// Package irc parses the Twitch IRCv3 lines that carry chat messages and
// their emote positions.
package irc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by every ParseMessage error.
var ErrMalformed = errors.New("malformed irc message")

const ctcpAction = "\x01ACTION "

// Message is one parsed IRC line.
type Message struct {
	Tags    map[string]string
	Prefix  string
	Command string
	Params  []string
	// Text is the trailing parameter, with a /me wrapper removed.
	Text string
	// Action is set for /me messages.
	Action bool
}

// Channel returns the first parameter without its leading '#'.
func (m *Message) Channel() string {
	if len(m.Params) == 0 {
		return ""
	}
	return strings.TrimPrefix(m.Params[0], "#")
}

// Nick returns the nick part of the prefix.
func (m *Message) Nick() string {
	nick, _, _ := strings.Cut(m.Prefix, "!")
	return nick
}

// DisplayName returns the display-name tag, falling back to the nick.
func (m *Message) DisplayName() string {
	if name := m.Tags["display-name"]; name != "" {
		return name
	}
	return m.Nick()
}

// ParseMessage parses a raw line of the form
//
//	[@tags] [:prefix] COMMAND [params] [:trailing]
//
// Trailing CR/LF is ignored.
func ParseMessage(line string) (*Message, error) {
	line = strings.TrimRight(line, "\r\n")
	m := &Message{Tags: map[string]string{}}

	if strings.HasPrefix(line, "@") {
		tags, rest, ok := strings.Cut(line[1:], " ")
		if !ok {
			return nil, fmt.Errorf("%w: tags without command", ErrMalformed)
		}
		for _, tag := range strings.Split(tags, ";") {
			if tag == "" {
				continue
			}
			k, v, _ := strings.Cut(tag, "=")
			m.Tags[k] = unescapeTagValue(v)
		}
		line = strings.TrimLeft(rest, " ")
	}

	if strings.HasPrefix(line, ":") {
		prefix, rest, ok := strings.Cut(line[1:], " ")
		if !ok {
			return nil, fmt.Errorf("%w: prefix without command", ErrMalformed)
		}
		m.Prefix = prefix
		line = strings.TrimLeft(rest, " ")
	}

	var trailing string
	hasTrailing := false
	if i := strings.Index(line, " :"); i >= 0 {
		trailing = line[i+2:]
		line = line[:i]
		hasTrailing = true
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: missing command", ErrMalformed)
	}
	m.Command = fields[0]
	m.Params = fields[1:]
	if hasTrailing {
		m.Params = append(m.Params, trailing)
		m.Text = trailing
		if strings.HasPrefix(trailing, ctcpAction) {
			m.Text = strings.TrimSuffix(trailing[len(ctcpAction):], "\x01")
			m.Action = true
		}
	}
	return m, nil
}

// unescapeTagValue reverses IRCv3 tag value escaping.
func unescapeTagValue(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(v) {
			// A trailing lone backslash is dropped.
			break
		}
		switch v[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
