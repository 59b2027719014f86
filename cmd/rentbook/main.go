// Package main provides the rentbook CLI, a command-line front end for the
// property record store. See docs/ARCHITECTURE.md § CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes: user errors are distinguished from system failures so
// scripts can tell a bad invocation from a broken store.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagActor     int64
)

// configDataDir and configPrefix hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir string
	configPrefix  string
)

var rootCmd = &cobra.Command{
	Use:   "rentbook",
	Short: "Rentbook keeps the books for rental properties",
	Long: `Rentbook is a record keeper for rental property management: properties,
owners, renters, rental agreements, rent receipts, and payments, with a
reconciliation pass that keeps the derived balances consistent.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configPrefix = cfg.GetString(cfgKeyPrefix)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rentbook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().Int64Var(&flagActor, "actor", 1, "acting user id recorded on writes")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(reconcileCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the rentbook storage",
	Long:  `Initialize the storage backend: create the data directory, apply the schema, and seed the dictionaries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		fmt.Println("Rentbook storage initialized")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rentbook v0.1.0")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
