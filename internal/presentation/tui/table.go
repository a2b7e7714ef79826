package tui

import (
	"io"
	"strings"

	"github.com/aretw0/specdoc/pkg/domain"
	"github.com/olekukonko/tablewriter"
)

// WriteTable prints one row per entry: key, flags and format.
func WriteTable(w io.Writer, entries []domain.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Flags", "Format"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, e := range entries {
		format := e.Format
		if e.IsAlias() {
			format = "alias for " + e.AliasFor.String()
		}
		table.Append([]string{e.Key.String(), flags(e), format})
	}
	table.Render()
}

func flags(e domain.Entry) string {
	var out []string
	if e.Required {
		out = append(out, "required")
	}
	if e.Experimental {
		out = append(out, "experimental")
	}
	return strings.Join(out, ",")
}
