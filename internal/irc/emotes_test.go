package irc

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/multierr"

	msgparser "github.com/riverfjs/msgparser-go"
)

func TestParseEmotes(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		text string
		want []msgparser.Emote
	}{
		{name: "empty tag", tag: "", text: "hi", want: nil},
		{
			name: "sorted by start",
			tag:  "1902:6-10/25:0-4,12-16",
			text: "Kappa Keepo Kappa",
			want: []msgparser.Emote{
				{ID: "25", Start: 0, End: 5},
				{ID: "1902", Start: 6, End: 11},
				{ID: "25", Start: 12, End: 17},
			},
		},
		{
			name: "code points become bytes",
			tag:  "25:3-7",
			text: "你好 Kappa",
			want: []msgparser.Emote{{ID: "25", Start: 7, End: 12}},
		},
		{
			name: "emoji before emote",
			tag:  "emotesv2_abc:2-4",
			text: "😀 LUL",
			want: []msgparser.Emote{{ID: "emotesv2_abc", Start: 5, End: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEmotes(tt.tag, tt.text)
			if err != nil {
				t.Fatalf("ParseEmotes() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEmotes() = %+v, want %+v", got, tt.want)
			}
			if _, err := msgparser.ParseParts(tt.text, got); err != nil {
				t.Errorf("ParseParts() rejected ParseEmotes output: %v", err)
			}
		})
	}
}

func TestParseEmotes_Errors(t *testing.T) {
	got, err := ParseEmotes(":0-1/25:0-4,x-2,3-1,9-20/88:2-3", "Kappa hi")
	want := []msgparser.Emote{{ID: "25", Start: 0, End: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseEmotes() = %+v, want %+v", got, want)
	}

	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Fatalf("ParseEmotes() reported %d errors, want 5: %v", len(errs), err)
	}
	for _, e := range errs {
		if !errors.Is(e, ErrBadEmote) {
			t.Errorf("error %v does not wrap ErrBadEmote", e)
		}
	}
}

func TestParseEmotes_HugeIndex(t *testing.T) {
	for _, tag := range []string{"25:0-9223372036854775807", "25:9223372036854775807-9223372036854775807"} {
		got, err := ParseEmotes(tag, "Kappa")
		if len(got) != 0 {
			t.Errorf("ParseEmotes(%q) = %+v, want none", tag, got)
		}
		if !errors.Is(err, ErrBadEmote) {
			t.Errorf("ParseEmotes(%q) error = %v, want ErrBadEmote", tag, err)
		}
	}
}

func TestMessage_Emotes(t *testing.T) {
	m, err := ParseMessage("@emotes=25:0-4 :a!a@a PRIVMSG #c :Kappa")
	if err != nil {
		t.Fatalf("ParseMessage() error = %v", err)
	}
	emotes, err := m.Emotes()
	if err != nil {
		t.Fatalf("Emotes() error = %v", err)
	}
	if len(emotes) != 1 || emotes[0] != (msgparser.Emote{ID: "25", Start: 0, End: 5}) {
		t.Errorf("Emotes() = %+v", emotes)
	}
}
