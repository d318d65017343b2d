package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// TextFormatter renders the human-readable default output: a one-line
// summary for create mode, and the categorized report for verify mode.
type TextFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TextFormatter) Format(w *bytes.Buffer, r *Result) error {
	if r.Report == nil {
		fmt.Fprintf(w, "wrote %s: %d files, %s hashed in %s\n",
			r.ManifestPath, r.Files, humanize.IBytes(uint64(r.Bytes)), r.Elapsed.Round(time.Millisecond))
		return nil
	}

	rep := r.Report
	if rep.Clean() {
		fmt.Fprintf(w, "all files valid (%d checked)\n", rep.Checked)
		return nil
	}

	writeCategory(w, "mismatched", rep.Mismatched)
	writeCategory(w, "missing", rep.Missing)
	writeCategory(w, "extra", rep.Extra)
	fmt.Fprintf(w, "%d checked, %d mismatched, %d missing, %d extra\n",
		rep.Checked, len(rep.Mismatched), len(rep.Missing), len(rep.Extra))
	return nil
}

// writeCategory prints a header and indented path list, skipping empty
// categories.
func writeCategory(w *bytes.Buffer, name string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", name, len(paths))
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

func init() {
	Register("text", func() Formatter {
		return &TextFormatter{}
	})
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
