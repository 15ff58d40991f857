package main

import (
	"fmt"

	"github.com/zarkhq/zark"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	if c.Depth < 1 {
		fmt.Fprintf(deps.Stderr, "error: depth must be at least 1\n")
		return zark.Errorf(zark.EINVALID, "depth must be at least 1")
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s (depth %d)...\n", c.URL, c.Depth)

	stored, err := deps.Crawler.Ingest(deps.Ctx, c.URL, c.Depth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored %d pages\n", stored)
	return nil
}
