// Package cli provides the command-line interface for luma.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/config"
	"github.com/jmylchreest/luma/internal/version"
)

var (
	// Global custom-colours file flag
	globalColoursFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "luma",
		Short: "A WCAG colour contrast checker",
		Long: `Luma checks colour pairs against the WCAG 2.x contrast guidelines.

Give it a foreground and a background colour (CSS colour names or hex codes)
and it reports the contrast ratio and whether the pair meets the AA and AAA
thresholds for normal and large text. It can also rank the dominant colours
of an image and serve the checker as a small HTTP API.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&globalColoursFile, "colours-file", "", "YAML file of custom named colours (name: \"#rrggbb\")")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(luminanceCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig assembles runtime configuration from the environment and
// global flags.
func loadConfig() (config.Config, error) {
	return config.NewBuilder().
		WithEnvConfig().
		WithColoursFile(globalColoursFile).
		Build()
}

// newNormalizer builds the colour normalizer shared by all commands,
// layering custom colours from the configuration over the built-in table.
func newNormalizer() (*colour.Normalizer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return colour.NewNormalizer(cfg.CustomColours)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
