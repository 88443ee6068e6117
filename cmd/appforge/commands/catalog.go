package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appforge/appforge/internal/catalog"
)

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List available frameworks and features",
		RunE:  runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println("Frameworks:")
	fmt.Println("===========")
	for _, f := range catalog.Frameworks() {
		fmt.Printf("  %-18s %s - %s\n", f.Value, f.Label, f.Description)
	}

	fmt.Println("\nFeatures:")
	fmt.Println("=========")
	grouped := catalog.FeaturesByCategory()
	for _, category := range catalog.FeatureCategories() {
		fmt.Printf("  %s:\n", category)
		for _, f := range grouped[category] {
			fmt.Printf("    %-22s %s\n", f.ID, f.Label)
		}
	}
	return nil
}
