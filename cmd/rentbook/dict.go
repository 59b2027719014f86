// Dictionary lookup command for the rentbook CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var dictModeFlag string

// dictModes maps the --mode flag values to resolver modes.
var dictModes = map[string]types.DictMode{
	"label":      types.DictLabel,
	"code-label": types.DictCodeLabel,
	"code":       types.DictCode,
	"id":         types.DictID,
	"all":        types.DictAll,
}

var dictCmd = &cobra.Command{
	Use:   "dict <dictionary> <key>",
	Short: "Resolve a dictionary entry",
	Long: `Dict resolves an entry of a coded lookup table. A numeric key is
treated as the identity, anything else as the code. A key that matches no
entry prints "not defined" rather than failing.

Valid dictionaries: country, legal_form, built_date, property_type, payment_mode

Example:
  rentbook dict country FR
  rentbook dict payment_mode 3 --mode code-label`,
	Args: cobra.ExactArgs(2),
	RunE: runDict,
}

func init() {
	dictCmd.Flags().StringVar(&dictModeFlag, "mode", "label", "result shape (label, code-label, code, id, all)")
}

func runDict(cmd *cobra.Command, args []string) error {
	mode, ok := dictModes[dictModeFlag]
	if !ok {
		return fmt.Errorf("unknown mode %q (valid: label, code-label, code, id, all)", dictModeFlag)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	v, err := backend.Resolve(args[0], args[1], mode)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}
	if !v.Found {
		fmt.Printf("%s %q: not defined\n", args[0], args[1])
		return nil
	}

	if flagJSON || mode == types.DictAll {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(v.Display)
	return nil
}
