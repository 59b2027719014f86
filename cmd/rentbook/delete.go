// Delete command for the rentbook CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <element> <id>",
	Short: "Delete a record and everything it owns",
	Long: `Delete removes the record, its extension attributes, and its child
lines. A canceled record that still owns lines is refused.

Example:
  rentbook delete payment 7`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	element := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identity %q", args[1])
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	eng, err := engineFor(backend, element)
	if err != nil {
		return err
	}

	err = eng.Delete(id, flagActor)
	switch {
	case errors.Is(err, types.ErrNotFound):
		return fmt.Errorf("%s %d not found", element, id)
	case errors.Is(err, types.ErrRecordDeleteStatus):
		return fmt.Errorf("%s %d is canceled and still owns lines; delete the lines first", element, id)
	case err != nil:
		return fmt.Errorf("delete %s: %w", element, err)
	}

	fmt.Printf("Deleted %s %d\n", element, id)
	return nil
}
