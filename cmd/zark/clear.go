package main

import (
	"fmt"

	"github.com/zarkhq/zark"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return zark.Errorf(zark.EINVALID, "use --force to confirm deletion")
	}

	n, err := deps.Records.DeleteAllRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d knowledge entries\n", n)
	return nil
}
