package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

var (
	nameColor = color.New(color.FgCyan).SprintFunc()
	sizeColor = color.New(color.FgYellow).SprintFunc()
	typeColor = color.New(color.FgBlue).SprintFunc()
)

// printListing renders the discovered entries either as a colored table or,
// for scripting, as a JSON array.
func printListing(w io.Writer, report *model.Report, asJSON bool) error {
	if asJSON {
		entries := report.Entries
		if entries == nil {
			// An empty container still lists as a JSON array, not null.
			entries = []model.ContainerEntry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintf(w, "%s (%s): %d entries\n", report.Path, report.Format, len(report.Entries))
	for _, e := range report.Entries {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			nameColor(e.Name),
			sizeColor(fmt.Sprintf("%d bytes", e.Size)),
			typeColor(e.MediaType),
		)
	}
	return nil
}
