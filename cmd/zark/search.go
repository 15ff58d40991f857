package main

import (
	"fmt"
	"strings"

	"github.com/zarkhq/zark"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	_, recs, err := deps.Builder.BuildContext(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching knowledge entries. Use 'zark ingest' to add some.")
		return nil
	}

	for i, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%d. %s\n   %s\n", i+1, rec.Title, rec.URL)
		if rec.Summary != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", rec.Summary)
		}
		if len(rec.Tags) > 0 {
			fmt.Fprintf(deps.Stdout, "   tags: %s\n", strings.Join(rec.Tags, ", "))
		}
	}

	return nil
}
