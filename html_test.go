package msgparser

import (
	"errors"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		emotes []Emote
		opts   []Option
		want   string
	}{
		{
			name: "escapes text",
			msg:  `a < b & "c"`,
			want: `a &lt; b &amp; &quot;c&quot;`,
		},
		{
			name: "inline code",
			msg:  "run `<x>` now",
			want: "run <code>&lt;x&gt;</code> now",
		},
		{
			name: "inline code keeps spaces",
			msg:  "` b `",
			want: "<code> b </code>",
		},
		{
			name: "fenced code with language",
			msg:  "```go\nif a < b {}\n```",
			want: `<pre><code class="language-go">if a &lt; b {}</code></pre>`,
		},
		{
			name: "open code block",
			msg:  "x ```y",
			want: "x <pre><code>y</code></pre>",
		},
		{
			name:   "emote",
			msg:    "hi Kappa",
			emotes: []Emote{{ID: "25", Start: 3, End: 8}},
			want:   `hi <img class="emote" alt="Kappa" title="Kappa" src="https://static-cdn.jtvnw.net/emoticons/v2/25/static/dark/1.0">`,
		},
		{
			name:   "custom emote url",
			msg:    "Kappa",
			emotes: []Emote{{ID: "25", Start: 0, End: 5}},
			opts:   []Option{WithEmoteURL("/e/{id}.png")},
			want:   `<img class="emote" alt="Kappa" title="Kappa" src="/e/25.png">`,
		},
		{
			name:   "emote url without id token",
			msg:    "Kappa",
			emotes: []Emote{{ID: "25", Start: 0, End: 5}},
			opts:   []Option{WithEmoteURL("/e/emote.png")},
			want:   `<img class="emote" alt="Kappa" title="Kappa" src="/e/emote.png">`,
		},
		{
			name:   "emote url with percent verb",
			msg:    "Kappa",
			emotes: []Emote{{ID: "25", Start: 0, End: 5}},
			opts:   []Option{WithEmoteURL("/e/%s/{id}")},
			want:   `<img class="emote" alt="Kappa" title="Kappa" src="/e/%s/25">`,
		},
		{
			name:   "emote inside code dropped",
			msg:    "`Kappa`",
			emotes: []Emote{{ID: "25", Start: 1, End: 6}},
			want:   "<code>Kappa</code>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderMessageHTML(tt.msg, tt.emotes, tt.opts...)
			if err != nil {
				t.Fatalf("RenderMessageHTML() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderMessageHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderMessageHTML_Precondition(t *testing.T) {
	_, err := RenderMessageHTML("ab", []Emote{{ID: "x", Start: 0, End: 3}})
	if !errors.Is(err, ErrUnsortedEmotes) {
		t.Errorf("RenderMessageHTML() error = %v, want ErrUnsortedEmotes", err)
	}
}
