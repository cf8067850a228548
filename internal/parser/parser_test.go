package parser

import "testing"

func TestParseCode(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Code
		wantOK bool
	}{
		{name: "code span", raw: "`x := 1`", want: Code{Body: "x := 1", Inline: true}, wantOK: true},
		{name: "code span keeps inner spaces", raw: "`a  b`", want: Code{Body: "a  b", Inline: true}, wantOK: true},
		{
			name:   "fenced with language",
			raw:    "```go\nfmt.Println(1)\n```",
			want:   Code{Language: "go", Body: "fmt.Println(1)"},
			wantOK: true,
		},
		{
			name:   "info string with attributes",
			raw:    "```python, linenos\nprint(1)\nprint(2)\n```",
			want:   Code{Language: "python", Body: "print(1)\nprint(2)"},
			wantOK: true,
		},
		{name: "empty fenced block", raw: "```\n```", want: Code{}, wantOK: true},
		{name: "closing fence on the same line", raw: "```go\nx```", wantOK: false},
		{name: "single line triple fence", raw: "```abc```", want: Code{Body: "abc", Inline: true}, wantOK: true},
		{name: "not code", raw: "hello", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCode(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseCode(%q) ok = %v, want %v (got %+v)", tt.raw, ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("ParseCode(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
