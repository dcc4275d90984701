// Package prompt parses a markdown prompt document into categories and
// prompt bodies, and provides lookups, suggestions, clipboard access and a
// writer that appends new prompts in the same format.
//
// A prompt document looks like:
//
//	## Coding
//
//	### Review Code
//	```
//	Please review {file}
//	```
//
// Level-2 headings are categories, level-3 headings are prompts and the
// first fenced block after a prompt heading is its body.
package prompt

import (
	"bufio"
	"regexp"
	"strings"
)

// maxLineSize bounds a single document line.
const maxLineSize = 1024 * 1024

const fence = "```"

var (
	categoryHeadingRe = regexp.MustCompile(`^## (.+)$`)
	promptHeadingRe   = regexp.MustCompile(`^### (.+)$`)
)

// excludedCategories are level-2 headings that document the file itself
// rather than group prompts. Matching is exact.
var excludedCategories = map[string]bool{
	"Usage Examples":               true,
	"Tips for Using These Prompts": true,
	"Contributing New Prompts":     true,
}

// IsExcludedCategory reports whether a category heading is never listed.
func IsExcludedCategory(name string) bool {
	return excludedCategories[name]
}

type parseState int

const (
	stateIdle       parseState = iota // no category heading seen yet
	stateInCategory                   // inside a category, no prompt pending
	stateInPrompt                     // prompt heading seen, waiting for its fence
	stateInFence                      // collecting body lines
)

// parser is a single-use line-oriented state machine.
type parser struct {
	doc      *Document
	state    parseState
	category string
	tracked  bool
	prompt   string
	buf      []string
}

// Parse reads a prompt document in a single forward pass. Content problems
// such as unterminated fences or prompts without a body are never errors;
// those prompts are simply dropped. The only error is a line exceeding the
// scanner limit.
func Parse(text string) (*Document, error) {
	p := &parser{doc: newDocument(), state: stateIdle}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// Anything still inside a fence at EOF is dropped.
	return p.doc, nil
}

func (p *parser) line(line string) {
	if m := categoryHeadingRe.FindStringSubmatch(line); m != nil {
		p.enterCategory(m[1])
		return
	}
	if m := promptHeadingRe.FindStringSubmatch(line); m != nil && p.state != stateIdle {
		p.enterPrompt(m[1])
		return
	}
	if strings.TrimSpace(line) == fence && p.prompt != "" {
		p.toggleFence()
		return
	}
	if p.state == stateInFence {
		p.buf = append(p.buf, line)
	}
}

func (p *parser) enterCategory(name string) {
	p.interrupt()
	p.category = name
	p.tracked = !IsExcludedCategory(name)
	if p.tracked {
		p.doc.addCategory(name)
	}
	p.prompt = ""
	p.buf = nil
	p.state = stateInCategory
}

// enterPrompt starts a prompt under the current category. Prompts under an
// excluded category are still parsed, they just never appear in a listing.
func (p *parser) enterPrompt(name string) {
	p.interrupt()
	p.prompt = name
	if p.tracked {
		p.doc.appendPrompt(p.category, name)
	}
	p.buf = nil
	p.state = stateInPrompt
}

func (p *parser) toggleFence() {
	switch p.state {
	case stateInPrompt:
		p.state = stateInFence
	case stateInFence:
		p.doc.setBody(p.prompt, joinBody(p.buf))
		p.prompt = ""
		p.buf = nil
		p.state = stateInCategory
	}
}

// interrupt finalizes a prompt cut short by a new heading. Unlike a closing
// fence it only stores something when content was collected.
func (p *parser) interrupt() {
	if p.prompt == "" || len(p.buf) == 0 {
		return
	}
	if body := joinBody(p.buf); body != "" {
		p.doc.setBody(p.prompt, body)
	}
}

func joinBody(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
