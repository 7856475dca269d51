package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var policyPath string
	var seed uint64

	rootCmd := &cobra.Command{
		Use:   "citygen",
		Short: "Deterministic city population generator",
	}
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "project directory with districts.yaml (default: built-in table)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "session seed")

	rootCmd.AddCommand(generateCmd(&policyPath, &seed))
	rootCmd.AddCommand(classifyCmd(&policyPath))
	rootCmd.AddCommand(statsCmd(&policyPath, &seed))
	rootCmd.AddCommand(validateCmd(&policyPath))
	rootCmd.AddCommand(serveCmd(&policyPath, &seed))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(policyPath *string, seed *uint64) *cobra.Command {
	var radius int
	var asScene bool

	cmd := &cobra.Command{
		Use:   "generate [tile-x] [tile-y]",
		Short: "Generate buildings around a tile and emit them as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(*policyPath, *seed, args[0], args[1], radius, asScene)
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 0, "also generate tiles within this square radius")
	cmd.Flags().BoolVar(&asScene, "scene", false, "emit an assembled scene graph instead of raw descriptors")
	return cmd
}

func classifyCmd(policyPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [tile-x] [tile-y]",
		Short: "Print the district a tile resolves to",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runClassify(*policyPath, args[0], args[1])
		},
	}
}

func statsCmd(policyPath *string, seed *uint64) *cobra.Command {
	var radius int

	cmd := &cobra.Command{
		Use:   "stats [tile-x] [tile-y]",
		Short: "Summarize the generated population around a tile",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(*policyPath, *seed, args[0], args[1], radius)
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 2, "square radius of tiles to include")
	return cmd
}

func validateCmd(policyPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the policy table without generating anything",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(*policyPath)
		},
	}
}

func serveCmd(policyPath *string, seed *uint64) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local dev server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*policyPath, *seed, port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
