package msgparser

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/util"
)

// RenderHTML renders parts of msg as an HTML fragment. Text is escaped,
// inline codeblocks become <code>, triple-fenced ones <pre><code> with a
// language class, and emotes <img> tags pointing at RenderConfig.EmoteURL.
// Emote ids are substituted for EmoteIDToken in the URL.
func RenderHTML(msg string, parts []Part, opts ...Option) string {
	options := applyOptions(opts...)

	var b strings.Builder
	for _, p := range parts {
		switch p.Kind {
		case PartText:
			b.Write(util.EscapeHTML([]byte(p.Text)))

		case PartEmote:
			name := escapeString(msg[p.Start:p.End])
			src := escapeString(options.Config.EmoteImageURL(p.EmoteID))
			fmt.Fprintf(&b, `<img class="emote" alt="%s" title="%s" src="%s">`, name, name, src)

		case PartCodeblock:
			code := codeOf(p)
			body := escapeString(code.Body)
			if p.Fence() == 1 {
				b.WriteString("<code>" + body + "</code>")
				continue
			}
			if code.Language != "" {
				fmt.Fprintf(&b, `<pre><code class="language-%s">%s</code></pre>`, escapeString(code.Language), body)
			} else {
				b.WriteString("<pre><code>" + body + "</code></pre>")
			}
		}
	}
	return b.String()
}

// RenderMessageHTML parses msg and renders it with RenderHTML.
func RenderMessageHTML(msg string, emotes []Emote, opts ...Option) (string, error) {
	parts, err := ParseParts(msg, emotes)
	if err != nil {
		return "", err
	}
	return RenderHTML(msg, parts, opts...), nil
}

func escapeString(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
