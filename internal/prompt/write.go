package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrInvalidPrompt is returned by AddPrompt for input that would not parse
// back into the same prompt.
var ErrInvalidPrompt = errors.New("invalid prompt")

// AddPrompt appends a prompt to the document at path in the format Parse
// reads: a "### title" heading followed by a fenced body. The prompt goes to
// the end of the "## category" section, which is created at the end of the
// document when missing. A missing document is created.
func AddPrompt(fs afero.Fs, path, category, title, body string) error {
	category = strings.TrimSpace(category)
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	switch {
	case category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidPrompt)
	case title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidPrompt)
	case body == "":
		return fmt.Errorf("%w: content is required", ErrInvalidPrompt)
	case IsExcludedCategory(category):
		return fmt.Errorf("%w: %q is a reserved section", ErrInvalidPrompt, category)
	case ToKey(title) == "":
		return fmt.Errorf("%w: title %q has no usable characters", ErrInvalidPrompt, title)
	}
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == fence {
			return fmt.Errorf("%w: content may not contain a bare %s line", ErrInvalidPrompt, fence)
		}
	}

	existing := ""
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		existing = string(data)
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("creating new prompt document %s", path)
	default:
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	updated := insertPrompt(existing, category, title, body)
	if err := afero.WriteFile(fs, path, []byte(updated), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// formatPrompt renders one prompt block, without surrounding blank lines.
func formatPrompt(title, body string) string {
	var b strings.Builder
	b.WriteString("### " + title + "\n")
	b.WriteString(fence + "\n")
	b.WriteString(body + "\n")
	b.WriteString(fence + "\n")
	return b.String()
}

// insertPrompt returns content with the prompt placed at the end of the
// category's section.
func insertPrompt(content, category, title, body string) string {
	block := formatPrompt(title, body)
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if content == "" {
		lines = nil
	}

	start := -1
	for i, line := range lines {
		if m := categoryHeadingRe.FindStringSubmatch(line); m != nil && m[1] == category {
			start = i
			break
		}
	}

	var b strings.Builder
	if start < 0 {
		// Section doesn't exist, create it at the end.
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
		if len(lines) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## " + category + "\n\n")
		b.WriteString(block)
		return b.String()
	}

	// The section ends at the next "## " line, the same boundary Parse uses.
	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if categoryHeadingRe.MatchString(lines[j]) {
			end = j
			break
		}
	}

	// Trailing blank lines collapse into one separator before the new prompt.
	last := end
	for last > start+1 && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}

	for _, line := range lines[:last] {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(block)
	if end < len(lines) {
		b.WriteString("\n")
		for _, line := range lines[end:] {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
