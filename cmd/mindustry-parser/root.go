package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inventor200/MindustryParser/pkg/settings"
)

var rootCmd = &cobra.Command{
	Use:   "mindustry-parser <settings.bin> [operations...]",
	Short: "Inspect and edit Mindustry settings.bin files",
	Long: `mindustry-parser reads a Mindustry settings.bin file and prints or edits
its entries. Operations form flat groups that may repeat in any order:

  mindustry-parser path/to/settings.bin --read <key> ...
      Print the value and byte address of <key>

  mindustry-parser path/to/settings.bin --write <key> <value> ...
      Set <key> to <value>

  mindustry-parser path/to/settings.bin --show-all
      Print all keys, values, and addresses found in the file

  mindustry-parser path/to/settings.bin --pretend --write <key> <value>
      The --pretend flag modifies the settings in memory only, and does not
      modify the file on disk

  --json switches read and --show-all output to JSON.

  -r => alias for --read
  -w => alias for --write

Valid boolean values for "true":  1 true t yes on active
Valid boolean values for "false": 0 false f nil no off inactive

The file is rewritten (atomically) only when at least one write was applied
and --pretend is absent. Binary (byte list) values are read-only.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	switch args[0] {
	case "-h", "--help", "help":
		return cmd.Help()
	}

	path := args[0]
	opArgs := args[1:]
	opts := scanOptions(opArgs)

	table, err := settings.DecodeFile(path)
	if err != nil {
		return err
	}

	if opts.showAll {
		if err := printAll(os.Stdout, table, opts.jsonOut); err != nil {
			return err
		}
	}

	dirty, err := runOps(table, opArgs, opts, os.Stdout)
	if err != nil {
		return err
	}
	if !opts.jsonOut {
		// Terminates the comma-separated read output line.
		fmt.Println()
	}

	if dirty && !opts.pretend {
		if err := settings.Save(table, path); err != nil {
			return err
		}
		fmt.Println("The file has been modified.")
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
