// Command parquetctl inspects and dumps Parquet files from the command
// line. It replaces a raw os.Args switch with a small cobra tree: each
// subcommand opens the target file once and talks to internal/pqio's
// public Reader/Cursor surface directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parquetctl",
		Short:         "Inspect and dump Parquet files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInspectCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newCatCmd())
	root.AddCommand(newRowcountCmd())
	return root
}
