// List command for the rentbook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <element> [filter...]",
	Short: "List records with optional filters",
	Long: `List queries records of the given element. Filters are key=value pairs
ANDed together; limit and offset page the result. An empty filter returns
all records.

Example:
  rentbook list owner
  rentbook list receipt paid=0
  rentbook list agreement status=1 limit=20 offset=40`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	element := args[0]

	schema, ok := types.Schemas[element]
	if !ok {
		return fmt.Errorf("unknown element %q (valid: %s)", element, validElementsStr)
	}

	filter := make(map[string]any)
	for _, arg := range args[1:] {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid filter %q (expected key=value)", arg)
		}
		key, raw := parts[0], parts[1]

		if key == "limit" || key == "offset" {
			var n int
			if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
				return fmt.Errorf("invalid %s %q", key, raw)
			}
			filter[key] = n
			continue
		}

		f, known := schema.ByName(key)
		if !known {
			return fmt.Errorf("unknown filter field %q for %s", key, element)
		}
		v, err := parseFieldValue(f, raw)
		if err != nil {
			return err
		}
		filter[key] = v
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

	records, err := eng.List(filter)
	if err != nil {
		return fmt.Errorf("list %s: %w", element, err)
	}

	if flagJSON {
		out := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			out = append(out, map[string]any{"id": rec.ID, "values": rec.Values})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, rec := range records {
		label := ""
		if f, ok := schema.ByRole(types.RoleLabel); ok {
			label = rec.String(f.Name)
		}
		ref := ""
		if f, ok := schema.ByRole(types.RoleRef); ok {
			ref = rec.String(f.Name)
		}
		fmt.Printf("%d\t%s\t%s\n", rec.ID, ref, label)
	}
	return nil
}
