package man

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestManCmd(t *testing.T) {
	root := &cobra.Command{Use: "promptbook", Short: "Print prompts from a markdown document"}
	root.Flags().BoolP("list", "l", false, "List categories and prompts")
	root.AddCommand(NewManCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"man"})
	if err := root.Execute(); err != nil {
		t.Fatalf("man command failed: %v", err)
	}

	page := out.String()
	for _, want := range []string{".TH", "promptbook", "list"} {
		if !strings.Contains(page, want) {
			t.Errorf("expected man page to contain %q", want)
		}
	}
}

func TestManCmdIsHidden(t *testing.T) {
	if !NewManCmd().Hidden {
		t.Error("expected man command to be hidden")
	}
}
