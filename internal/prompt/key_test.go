package prompt

import "testing"

func TestToKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Review Code", "review-code"},
		{"punctuation and parentheses", "My Prompt!! (v2)", "my-prompt-v2"},
		{"already a key", "review-code", "review-code"},
		{"collapses mixed separators", "a - b\t--  c", "a-b-c"},
		{"trims edge hyphens", "  -Hello-  ", "hello"},
		{"keeps underscores", "snake_case name", "snake_case-name"},
		{"keeps digits", "Top 10 Tips", "top-10-tips"},
		{"unicode letters", "Café Über", "café-über"},
		{"only punctuation", "!!! ???", ""},
		{"empty", "", ""},
		{"slashes and dots are removed", "Code/Review v1.2", "codereview-v12"},
		{"placeholder braces removed", "Explain {topic}", "explain-topic"},
		{"no-break space separates", "Review\u00a0Code", "review-code"},
		{"em space separates", "Review\u2003Code", "review-code"},
		{"vertical tab separates", "Review\vCode", "review-code"},
		{"line separator separates", "Review\u2028Code", "review-code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToKey(tt.input); got != tt.expected {
				t.Errorf("ToKey(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToKeyIdempotent(t *testing.T) {
	inputs := []string{
		"Review Code",
		"My Prompt!! (v2)",
		"  --weird__ spacing --  ",
		"İstanbul Notes",
		"Ünïcödé — dash",
		"tabs\tand\nnewlines",
		"no\u00a0break\u2003spaces",
		"",
	}
	for _, in := range inputs {
		once := ToKey(in)
		if twice := ToKey(once); twice != once {
			t.Errorf("ToKey not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func FuzzToKeyIdempotent(f *testing.F) {
	f.Add("My Prompt!! (v2)")
	f.Add("Review Code")
	f.Fuzz(func(t *testing.T, s string) {
		once := ToKey(s)
		if twice := ToKey(once); twice != once {
			t.Errorf("ToKey not idempotent for %q: %q then %q", s, once, twice)
		}
	})
}
