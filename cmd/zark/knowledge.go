package main

import (
	"fmt"

	"github.com/zarkhq/zark"
)

// Run executes the knowledge command.
func (c *KnowledgeCmd) Run(deps *Dependencies) error {
	total, err := deps.Records.CountRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No knowledge entries. Use 'zark ingest' to add some.")
		return nil
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, zark.RecordFilter{
		SortBy: zark.SortByIngestedAt,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d knowledge entries (showing %d most recent)\n", total, len(recs))
	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", rec.IngestedAt.Format("2006-01-02 15:04"), rec.Title, rec.URL)
	}

	return nil
}
