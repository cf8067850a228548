package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultLanguageToExt maps programming language names to file extensions.
var DefaultLanguageToExt = map[string]string{
	"python":     "py",
	"py":         "py",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"java":       "java",
	"c++":        "cpp",
	"cpp":        "cpp",
	"c":          "c",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"sh":         "sh",
	"shell":      "sh",
	"json":       "json",
	"yaml":       "yaml",
	"xml":        "xml",
	"toml":       "toml",
	"go":         "go",
	"golang":     "go",
	"rust":       "rs",
	"rs":         "rs",
	"ruby":       "rb",
	"sql":        "sql",
	"lua":        "lua",
	"markdown":   "md",
	"plaintext":  "txt",
	"text":       "txt",
	"txt":        "txt",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ExtractValidFilename extracts a valid filename (with extension) from a line of text.
func ExtractValidFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" && !strings.HasPrefix(match, ".") {
			return match
		}
	}
	return ""
}

// GetExt returns the file extension for a given language.
func GetExt(language string) string {
	ext, ok := DefaultLanguageToExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// GetFilename generates a filename for a code block.
//
// A file name mentioned in the first line of the code (e.g. "// main.go")
// is used when it carries the language's extension; otherwise the name is
// "snippet.<ext>".
func GetFilename(code string, language string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(code), "\n")
	ext := GetExt(language)

	name := ExtractValidFilename(strings.ReplaceAll(first, "\\", ""))
	if name != "" && strings.HasSuffix(name, "."+ext) && len(name) <= 32 {
		return name
	}
	return "snippet." + ext
}
