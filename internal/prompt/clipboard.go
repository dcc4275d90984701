package prompt

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard copies text to the system clipboard. On Linux this needs
// xclip, xsel or wl-copy on the PATH.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found (xclip, xsel or wl-clipboard required)")
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
