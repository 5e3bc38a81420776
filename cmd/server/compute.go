package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/charfile"
)

var computeOutput string

var computeCmd = &cobra.Command{
	Use:   "compute [character-file]",
	Short: "Compute derived statistics for a character file",
	Long: `Read a character record from a JSON or YAML file, normalize it and print
the derived statistics. Nothing is stored.

  Example: compute thorin.yaml --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeOutput, "output", "o", "json", "output format (json, yaml)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	record, err := charfile.Read(args[0])
	if err != nil {
		return err
	}

	catalogs, err := loadCatalogs(cmd.Context(), cfg.Catalog)
	if err != nil {
		return err
	}

	char := engine.Normalize(record)
	stats := engine.Compute(char, catalogs)

	payload := map[string]interface{}{
		"character":  char,
		"statistics": stats,
	}

	out := cmd.OutOrStdout()
	switch computeOutput {
	case "yaml":
		// through JSON so the yaml keys match the json field names
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown output format %q", computeOutput)
	}
}
