// Update command for the rentbook CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update <element> <id> field=value...",
	Short: "Update fields of an existing record",
	Long: `Update fetches the record, applies the given key=value changes, and
persists the result. Unknown keys update extension attributes.

Example:
  rentbook update renter 4 phone=0240506070
  rentbook update property 2 town=Nantes zip=44000`,
	Args: cobra.MinimumNArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	element := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identity %q", args[1])
	}

	changes, err := parseFieldArgs(element, args[2:])
	if err != nil {
		return err
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

	rec, err := eng.Fetch(id, "")
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("%s %d not found", element, id)
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", element, err)
	}

	for k, v := range changes.Values {
		rec.Values[k] = v
	}
	for k, v := range changes.Extras {
		if rec.Extras == nil {
			rec.Extras = map[string]any{}
		}
		rec.Extras[k] = v
	}

	if err := eng.Update(rec, flagActor); err != nil {
		return fmt.Errorf("update %s: %w", element, err)
	}

	if flagJSON {
		updated, err := eng.Fetch(id, "")
		if err != nil {
			return fmt.Errorf("fetch updated %s: %w", element, err)
		}
		return printRecord(updated)
	}

	fmt.Printf("Updated %s %d\n", element, id)
	return nil
}
