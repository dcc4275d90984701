// Package render writes the category listing of a prompt document, either
// as styled text for a terminal or as YAML for other tools.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/toozej/promptbook/internal/prompt"
)

// Format selects the listing output.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, FormatText, FormatYAML)
}

// Options controls List.
type Options struct {
	Format  Format
	NoColor bool
}

// List writes every listed category of doc followed by its prompt keys.
func List(w io.Writer, doc *prompt.Document, opts Options) error {
	if opts.Format == FormatYAML {
		return listYAML(w, doc)
	}
	return listText(w, doc, opts.NoColor)
}

func listText(w io.Writer, doc *prompt.Document, noColor bool) error {
	// The renderer inspects w, so non-terminal writers get plain text.
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	categoryStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("#04B575"))

	for i, c := range doc.Categories() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, categoryStyle.Render(c.Name)); err != nil {
			return err
		}
		for _, name := range c.Prompts {
			if _, err := fmt.Fprintf(w, "  %s\n", keyStyle.Render(prompt.ToKey(name))); err != nil {
				return err
			}
		}
	}
	return nil
}

type yamlPrompt struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

type yamlCategory struct {
	Category string       `yaml:"category"`
	Prompts  []yamlPrompt `yaml:"prompts"`
}

func listYAML(w io.Writer, doc *prompt.Document) error {
	categories := doc.Categories()
	out := make([]yamlCategory, 0, len(categories))
	for _, c := range categories {
		yc := yamlCategory{Category: c.Name, Prompts: []yamlPrompt{}}
		for _, name := range c.Prompts {
			yc.Prompts = append(yc.Prompts, yamlPrompt{Name: name, Key: prompt.ToKey(name)})
		}
		out = append(out, yc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	return enc.Close()
}
