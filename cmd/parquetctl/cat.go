package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/murakmii/parquet/internal/pqio"
)

func newCatCmd() *cobra.Command {
	var columns []string
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Stream materialized rows as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rd, err := pqio.Open(f)
			if err != nil {
				return err
			}
			defer rd.Close()

			projection := make([]any, len(columns))
			for i, c := range columns {
				projection[i] = c
			}
			cur, err := rd.GetCursor(projection...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for {
				row, err := cur.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				if err := enc.Encode(row); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringArrayVar(&columns, "column", nil, "restrict output to leaves under this comma-joined path prefix (repeatable)")
	return cmd
}
