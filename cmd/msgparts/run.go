package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	msgparser "github.com/riverfjs/msgparser-go"
	"github.com/riverfjs/msgparser-go/internal/irc"
)

// Config holds the command line settings.
type Config struct {
	Format    string
	MaxLength int
	Options   []msgparser.Option
}

var formats = map[string]bool{"parts": true, "json": true, "telegram": true, "html": true}

// parseConfig validates flag values.
func parseConfig(format, emoji string, maxLen int) (Config, error) {
	cfg := Config{Format: format, MaxLength: maxLen}
	if !formats[format] {
		return cfg, fmt.Errorf("unknown format %q", format)
	}
	if maxLen <= 0 {
		return cfg, fmt.Errorf("max length must be positive, got %d", maxLen)
	}
	for _, pair := range strings.Split(emoji, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, custom, ok := strings.Cut(pair, "=")
		if !ok || id == "" || custom == "" {
			return cfg, fmt.Errorf("bad emoji mapping %q, want emote-id=custom-emoji-id", pair)
		}
		cfg.Options = append(cfg.Options, msgparser.WithCustomEmoji(id, custom))
	}
	return cfg, nil
}

// record is the json output for one chat message.
type record struct {
	Channel string           `json:"channel"`
	User    string           `json:"user"`
	Action  bool             `json:"action,omitempty"`
	Parts   []msgparser.Part `json:"parts"`
	Dropped int              `json:"dropped_emotes,omitempty"`
}

// telegramRecord is the telegram output for one content item.
type telegramRecord struct {
	Type     string                    `json:"type"`
	Text     string                    `json:"text,omitempty"`
	Entities []msgparser.MessageEntity `json:"entities,omitempty"`
	FileName string                    `json:"file_name,omitempty"`
}

// run processes every line of r and writes results to w. It returns the
// number of PRIVMSG lines that could not be processed.
func run(ctx context.Context, l *zap.Logger, cfg Config, r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	failed := 0
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ll := l.With(zap.Int("line", lineNo))

		m, err := irc.ParseMessage(line)
		if err != nil {
			ll.Warn("parse line", zap.Error(err))
			failed++
			continue
		}
		if m.Command != "PRIVMSG" {
			ll.Debug("skip command", zap.String("command", m.Command))
			continue
		}

		emotes, err := m.Emotes()
		if err != nil {
			for _, e := range multierr.Errors(err) {
				ll.Warn("emote tag", zap.Error(e))
			}
		}

		if err := writeMessage(ctx, cfg, m, emotes, w); err != nil {
			var pe *msgparser.PreconditionError
			if errors.As(err, &pe) {
				ll.Error("emote ranges rejected", zap.Int("index", pe.Index), zap.Error(err))
				failed++
				continue
			}
			return failed, err
		}
	}
	return failed, sc.Err()
}

func writeMessage(ctx context.Context, cfg Config, m *irc.Message, emotes []msgparser.Emote, w io.Writer) error {
	switch cfg.Format {
	case "telegram":
		contents, err := msgparser.Telegramify(ctx, m.Text, emotes, cfg.MaxLength, cfg.Options...)
		if err != nil {
			return err
		}
		for _, c := range contents {
			rec := telegramRecord{Type: c.GetContentType().String()}
			switch v := c.(type) {
			case *msgparser.Text:
				rec.Text = v.Text
				rec.Entities = v.Entities
			case *msgparser.File:
				rec.FileName = v.FileName
				rec.Text = string(v.FileData)
			}
			if err := writeJSON(w, rec); err != nil {
				return err
			}
		}
		return nil
	}

	parts, err := msgparser.ParseParts(m.Text, emotes)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return writeJSON(w, record{
			Channel: m.Channel(),
			User:    m.DisplayName(),
			Action:  m.Action,
			Parts:   parts,
			Dropped: len(msgparser.DroppedEmotes(emotes, parts)),
		})
	case "html":
		_, err := fmt.Fprintln(w, msgparser.RenderHTML(m.Text, parts, cfg.Options...))
		return err
	default:
		if _, err := fmt.Fprintf(w, "#%s <%s>\n", m.Channel(), m.DisplayName()); err != nil {
			return err
		}
		for _, p := range parts {
			val := p.Text
			if p.Kind == msgparser.PartEmote {
				val = p.EmoteID
			}
			if _, err := fmt.Fprintf(w, "\t%s\t%d-%d\t%q\n", p.Kind, p.Start, p.End, val); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
