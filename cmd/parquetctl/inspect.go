package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/murakmii/parquet/internal/pqio"
)

type inspectColumn struct {
	Path                  string `json:"path"`
	Codec                 string `json:"codec"`
	NumValues             int64  `json:"num_values"`
	TotalUncompressedSize int64  `json:"total_uncompressed_size"`
	TotalCompressedSize   int64  `json:"total_compressed_size"`
}

type inspectRowGroup struct {
	NumRows       int64           `json:"num_rows"`
	TotalByteSize int64           `json:"total_byte_size"`
	Columns       []inspectColumn `json:"columns"`
}

type inspectOutput struct {
	NumRows   int64             `json:"num_rows"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	RowGroups []inspectRowGroup `json:"row_groups"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Dump row-group and column-chunk shape as JSON",
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

			out := inspectOutput{NumRows: rd.NumRows(), Metadata: rd.GetMetadata()}
			for _, rg := range rd.RowGroups() {
				group := inspectRowGroup{NumRows: rg.NumRows, TotalByteSize: rg.TotalByteSize}
				for _, col := range rg.Columns {
					group.Columns = append(group.Columns, inspectColumn{
						Path:                  joinPath(col.MetaData.PathInSchema),
						Codec:                 col.MetaData.Codec.String(),
						NumValues:             col.MetaData.NumValues,
						TotalUncompressedSize: col.MetaData.TotalUncompressedSize,
						TotalCompressedSize:   col.MetaData.TotalCompressedSize,
					})
				}
				out.RowGroups = append(out.RowGroups, group)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

func newRowcountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rowcount <file>",
		Short: "Print the total row count",
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

			fmt.Fprintln(cmd.OutOrStdout(), rd.NumRows())
			return nil
		},
	}
}
