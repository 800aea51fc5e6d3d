// Package summarizer records what a manifest run did and renders it as a
// report file.
package summarizer

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter renders a Summary.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a plain function to Formatter.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// FormatterFor picks a formatter from the report file's extension:
// .yaml and .yml get YAML, anything else Markdown.
func FormatterFor(path string) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormatter{}
	default:
		return NewMarkdownFormatter()
	}
}

// YAMLFormatter renders a Summary as a YAML document for tooling that
// post-processes runs. Keys are not translated.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(s *Summary) string {
	out, err := yaml.Marshal(s)
	if err != nil {
		// Summary holds only strings, numbers and a time.
		panic(err)
	}
	return string(out)
}
