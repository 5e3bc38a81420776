package main

import (
	"github.com/spf13/cobra"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reference data commands",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write the active reference catalogs as YAML files",
	Long: `Load the reference catalogs from the configured source and write them as
armor.yaml, classes.yaml, skills.yaml and races.yaml. The output can be
edited and served back with --catalog-source file.

  Example: --catalog-source api catalog export ./catalogs`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogExport,
}

func init() {
	catalogCmd.AddCommand(catalogExportCmd)
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	catalogs, err := loadCatalogs(cmd.Context(), cfg.Catalog)
	if err != nil {
		return err
	}

	tables := &catalog.Tables{
		Armor:   catalogs.ListArmor(),
		Classes: catalogs.ListClasses(),
		Skills:  catalogs.ListSkills(),
		Races:   catalogs.ListRaces(),
	}
	if err := catalog.WriteDir(args[0], tables); err != nil {
		return err
	}

	cmd.Printf("wrote %d armor, %d classes, %d skills, %d races to %s\n",
		len(tables.Armor), len(tables.Classes), len(tables.Skills), len(tables.Races), args[0])
	return nil
}
