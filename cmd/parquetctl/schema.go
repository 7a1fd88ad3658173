package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/murakmii/parquet/internal/pqio"
	"github.com/murakmii/parquet/internal/pschema"
)

func repetitionName(r pschema.Repetition) string {
	switch r {
	case pschema.Optional:
		return "OPTIONAL"
	case pschema.Repeated:
		return "REPEATED"
	}
	return "REQUIRED"
}

type schemaLeaf struct {
	Path       string `json:"path"`
	Primitive  string `json:"primitive"`
	Repetition string `json:"repetition"`
	RLevelMax  int32  `json:"r_level_max"`
	DLevelMax  int32  `json:"d_level_max"`
	Encoding   string `json:"encoding"`
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file>",
		Short: "Dump the flattened leaf list as JSON",
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

			var leaves []schemaLeaf
			for _, leaf := range rd.Schema().Leaves {
				leaves = append(leaves, schemaLeaf{
					Path:       leaf.Key,
					Primitive:  leaf.Primitive.String(),
					Repetition: repetitionName(leaf.Repetition),
					RLevelMax:  leaf.RLevelMax,
					DLevelMax:  leaf.DLevelMax,
					Encoding:   string(leaf.Encoding),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(leaves)
		},
	}
}
