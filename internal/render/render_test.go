package render

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/toozej/promptbook/internal/prompt"
)

const testDocument = "## Usage Examples\n" +
	"### Hidden\n```\nh\n```\n" +
	"## Coding\n" +
	"### Review Code\n```\nPlease review {file}\n```\n" +
	"### My Prompt!! (v2)\n```\nv2\n```\n" +
	"## Empty\n" +
	"## Writing\n" +
	"### Email Template\n```\nemail\n```\n"

func parse(t *testing.T) *prompt.Document {
	t.Helper()
	doc, err := prompt.Parse(testDocument)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return doc
}

func TestListText(t *testing.T) {
	var out bytes.Buffer
	if err := List(&out, parse(t), Options{Format: FormatText, NoColor: true}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	want := "Coding\n" +
		"  review-code\n" +
		"  my-prompt-v2\n" +
		"\n" +
		"Empty\n" +
		"\n" +
		"Writing\n" +
		"  email-template\n"
	if out.String() != want {
		t.Errorf("unexpected listing\n got: %q\nwant: %q", out.String(), want)
	}
}

func TestListTextNonTerminalHasNoEscapes(t *testing.T) {
	var out bytes.Buffer
	if err := List(&out, parse(t), Options{Format: FormatText}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected plain output for a non-terminal writer, got %q", out.String())
	}
}

func TestListEmptyDocument(t *testing.T) {
	doc, err := prompt.Parse("")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	var out bytes.Buffer
	if err := List(&out, doc, Options{NoColor: true}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestListYAML(t *testing.T) {
	var out bytes.Buffer
	if err := List(&out, parse(t), Options{Format: FormatYAML}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var got []yamlCategory
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d:\n%s", len(got), out.String())
	}
	if got[0].Category != "Coding" || got[1].Category != "Empty" || got[2].Category != "Writing" {
		t.Errorf("categories out of order: %+v", got)
	}
	if got[0].Prompts[1].Name != "My Prompt!! (v2)" || got[0].Prompts[1].Key != "my-prompt-v2" {
		t.Errorf("unexpected prompt entry: %+v", got[0].Prompts[1])
	}
	if len(got[1].Prompts) != 0 {
		t.Errorf("expected empty prompt list, got %+v", got[1].Prompts)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in        string
		expected  Format
		expectErr bool
	}{
		{in: "", expected: FormatText},
		{in: "text", expected: FormatText},
		{in: "yaml", expected: FormatYAML},
		{in: "json", expectErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.expectErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
