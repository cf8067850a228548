package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	msgparser "github.com/riverfjs/msgparser-go"
)

const sampleLine = "@display-name=Viewer;emotes=25:0-4 :viewer!viewer@viewer.tmi.twitch.tv PRIVMSG #chan :Kappa try `Kappa`"

func mustConfig(t *testing.T, format, emoji string) Config {
	t.Helper()
	cfg, err := parseConfig(format, emoji, msgparser.DefaultMaxMessageLength)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	return cfg
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig("telegram", " 25=111, 88=222 ,", 100)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if len(cfg.Options) != 2 || cfg.MaxLength != 100 {
		t.Errorf("parseConfig() = %+v", cfg)
	}

	for _, tt := range []struct {
		format, emoji string
		max           int
	}{
		{"xml", "", 10},
		{"parts", "", 0},
		{"parts", "25", 10},
		{"parts", "=1", 10},
	} {
		if _, err := parseConfig(tt.format, tt.emoji, tt.max); err == nil {
			t.Errorf("parseConfig(%q, %q, %d) accepted bad input", tt.format, tt.emoji, tt.max)
		}
	}
}

func TestRun_Parts(t *testing.T) {
	in := strings.Join([]string{
		"PING :tmi.twitch.tv",
		"",
		sampleLine,
	}, "\n")
	var out bytes.Buffer
	failed, err := run(context.Background(), zap.NewNop(), mustConfig(t, "parts", ""), strings.NewReader(in), &out)
	if err != nil || failed != 0 {
		t.Fatalf("run() = %d, %v", failed, err)
	}
	want := "#chan <Viewer>\n" +
		"\temote\t0-5\t\"25\"\n" +
		"\ttext\t5-10\t\" try \"\n" +
		"\tcodeblock\t10-17\t\"`Kappa`\"\n"
	if out.String() != want {
		t.Errorf("run() output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	if _, err := run(context.Background(), zap.NewNop(), mustConfig(t, "json", ""), strings.NewReader(sampleLine), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var rec record
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", out.String(), err)
	}
	if rec.Channel != "chan" || rec.User != "Viewer" || len(rec.Parts) != 3 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Parts[0].Kind != msgparser.PartEmote || rec.Parts[0].EmoteID != "25" {
		t.Errorf("parts[0] = %+v", rec.Parts[0])
	}
}

func TestRun_Telegram(t *testing.T) {
	var out bytes.Buffer
	cfg := mustConfig(t, "telegram", "25=5368324170671202286")
	if _, err := run(context.Background(), zap.NewNop(), cfg, strings.NewReader(sampleLine), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var rec telegramRecord
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", out.String(), err)
	}
	if rec.Type != "text" || rec.Text != "🙂 try Kappa" {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Entities) != 2 || rec.Entities[0].Type != "custom_emoji" || rec.Entities[1].Type != "code" {
		t.Errorf("entities = %+v", rec.Entities)
	}
}

func TestRun_HTML(t *testing.T) {
	var out bytes.Buffer
	if _, err := run(context.Background(), zap.NewNop(), mustConfig(t, "html", ""), strings.NewReader(sampleLine), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), `<img class="emote" alt="Kappa"`) || !strings.HasSuffix(out.String(), " try <code>Kappa</code>\n") {
		t.Errorf("run() output = %q", out.String())
	}
}

func TestRun_BadLines(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := strings.Join([]string{
		"@broken",
		"@emotes=25:0-4,9-99/x :a!a@a PRIVMSG #c :Kappa",
		"@emotes=25:0-9223372036854775807 :a!a@a PRIVMSG #c :Kappa",
	}, "\n")
	var out bytes.Buffer
	failed, err := run(context.Background(), zap.New(core), mustConfig(t, "parts", ""), strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if failed != 1 {
		t.Errorf("run() failed = %d, want 1", failed)
	}
	if n := logs.FilterMessage("emote tag").Len(); n != 3 {
		t.Errorf("emote tag warnings = %d, want 3", n)
	}
	if !strings.Contains(out.String(), "\temote\t0-5\t\"25\"\n") {
		t.Errorf("run() output = %q", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if _, err := run(ctx, zap.NewNop(), mustConfig(t, "parts", ""), strings.NewReader(sampleLine), &out); err == nil {
		t.Error("run() with cancelled context returned nil error")
	}
}
