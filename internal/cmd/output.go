package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/parliament/internal/util"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printRow writes cells padded to the given column widths. The last cell is
// never padded.
func printRow(w io.Writer, widths []int, cells ...string) {
	var b strings.Builder
	for i, cell := range cells {
		if i < len(widths) && i < len(cells)-1 {
			b.WriteString(util.PadRight(cell, widths[i]))
			b.WriteString("  ")
			continue
		}
		b.WriteString(cell)
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}
