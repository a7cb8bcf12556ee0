// Package clipboard copies text to the system clipboard, falling back to
// the terminal's OSC 52 escape when no clipboard tool is available.
package clipboard

import (
	"fmt"

	"github.com/andareed/siftly-sheet/logging"
	"github.com/atotto/clipboard"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// Method says how text reached the clipboard.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// Copy writes text to the clipboard.
func Copy(text string) (Method, error) {
	err := writeAll(text)
	if err == nil {
		logging.Debug("clipboard: copied", "method", MethodSystem, "bytes", len(text))
		return MethodSystem, nil
	}
	logging.Debug("clipboard: system clipboard failed, trying OSC52", "err", err)
	if oscErr := copyOSC52(text); oscErr != nil {
		return "", fmt.Errorf("copy to clipboard: %w", oscErr)
	}
	return MethodOSC52, nil
}
