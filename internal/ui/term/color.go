package term

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor the NO_COLOR convention (https://no-color.org/).
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
