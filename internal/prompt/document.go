package prompt

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrPromptNotFound is returned when a key has no stored body.
var ErrPromptNotFound = errors.New("prompt not found")

// Category is a listed level-2 heading and the display names of its prompts,
// in document order.
type Category struct {
	Name    string
	Prompts []string
}

// Document is the parsed form of a prompt document. It is not modified
// after Parse returns.
type Document struct {
	categories *orderedmap.OrderedMap[string, []string]
	bodies     map[string]string
}

func newDocument() *Document {
	return &Document{
		categories: orderedmap.New[string, []string](),
		bodies:     make(map[string]string),
	}
}

// addCategory registers a category; a repeated heading keeps its first position.
func (d *Document) addCategory(name string) {
	if _, ok := d.categories.Get(name); ok {
		return
	}
	d.categories.Set(name, []string{})
}

func (d *Document) appendPrompt(category, name string) {
	prompts, _ := d.categories.Get(category)
	d.categories.Set(category, append(prompts, name))
}

// setBody stores a body under the prompt's key, replacing any earlier one.
func (d *Document) setBody(name, body string) {
	d.bodies[ToKey(name)] = body
}

// Categories returns a copy of the listed categories in document order.
func (d *Document) Categories() []Category {
	out := make([]Category, 0, d.categories.Len())
	for pair := d.categories.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Category{
			Name:    pair.Key,
			Prompts: clone(pair.Value),
		})
	}
	return out
}

// Category returns the prompt names listed under a category.
func (d *Document) Category(name string) ([]string, bool) {
	prompts, ok := d.categories.Get(name)
	if !ok {
		return nil, false
	}
	return clone(prompts), true
}

// clone copies s, keeping an empty list non-nil.
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Body returns the stored body for a key.
func (d *Document) Body(key string) (string, bool) {
	body, ok := d.bodies[key]
	return body, ok
}

// Get is Body with an error wrapping ErrPromptNotFound for unknown keys.
func (d *Document) Get(key string) (string, error) {
	body, ok := d.bodies[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPromptNotFound, key)
	}
	return body, nil
}

// Keys returns every stored key, sorted.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.bodies))
	for k := range d.bodies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored bodies.
func (d *Document) Len() int {
	return len(d.bodies)
}

// Suggest returns up to limit stored keys that fuzzily resemble name, best
// match first. The name is normalized first so "Review Code" finds
// "review-code".
func (d *Document) Suggest(name string, limit int) []string {
	query := ToKey(name)
	if query == "" || limit <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, d.Keys())
	if len(ranks) == 0 {
		// Fall back to keys contained in the query, e.g. "review-code-please".
		for _, k := range d.Keys() {
			if fuzzy.MatchNormalizedFold(k, query) {
				ranks = append(ranks, fuzzy.Rank{Target: k, Distance: len(query) - len(k)})
			}
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	var out []string
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
