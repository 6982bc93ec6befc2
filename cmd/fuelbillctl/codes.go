package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Generate an ATOT/VTOT transaction code pair",
	Args:  cobra.NoArgs,
	RunE:  runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)

	codesCmd.Flags().Int64("seed", 0, "Seed the generator for reproducible codes")
}

func runCodes(cmd *cobra.Command, args []string) error {
	gen := billing.NewCodeGenerator()
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		gen = billing.NewSeededCodeGenerator(seed)
	}

	atot, vtot := gen.GenerateCodes()
	fmt.Printf("ATOT: %s\nVTOT: %s\n", atot, vtot)
	return nil
}
