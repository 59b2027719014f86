// Status transition commands for the rentbook CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <element> <id>",
	Short: "Validate a draft record",
	Long: `Validate moves a draft record to validated. Validated records are
referenced by agreements and reconciliation; the transition is final.

Example:
  rentbook validate owner 1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(args, "validate", "validated", func(eng types.RecordEngine, id int64) error {
			return eng.Validate(id, flagActor, nil)
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <element> <id>",
	Short: "Cancel a draft record",
	Long: `Cancel moves a draft record to canceled. The transition is final.

Example:
  rentbook cancel receipt 8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(args, "cancel", "canceled", func(eng types.RecordEngine, id int64) error {
			return eng.Cancel(id, flagActor)
		})
	},
}

func runTransition(args []string, verb, done string, apply func(types.RecordEngine, int64) error) error {
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

	err = apply(eng, id)
	switch {
	case errors.Is(err, types.ErrNotFound):
		return fmt.Errorf("%s %d not found", element, id)
	case errors.Is(err, types.ErrInvalidTransition):
		return fmt.Errorf("cannot %s %s %d: %w", verb, element, id, err)
	case err != nil:
		return fmt.Errorf("%s %s: %w", verb, element, err)
	}

	fmt.Printf("%s %d is now %s\n", element, id, done)
	return nil
}
