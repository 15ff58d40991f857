package main

import (
	"fmt"

	"github.com/zarkhq/zark"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	contextText, recs, err := deps.Builder.BuildContext(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	answer, err := deps.Answerer.Answer(deps.Ctx, contextText, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)

	if len(recs) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, rec := range recs {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", rec.Title, rec.URL)
		}
	}

	return nil
}
