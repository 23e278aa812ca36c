package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
)

var luminanceFormat string

// luminanceCmd represents the luminance command
var luminanceCmd = &cobra.Command{
	Use:   "luminance <colour>",
	Short: "Print the relative luminance of a colour",
	Long: `Print the WCAG relative luminance of a colour, a value between
0 (darkest) and 1 (lightest).

Examples:
  luma luminance white
  luma luminance "#ff8800"
  luma luminance --format json rebeccapurple`,
	Args: cobra.ExactArgs(1),
	RunE: runLuminance,
}

func init() {
	luminanceCmd.Flags().StringVarP(&luminanceFormat, "format", "f", "text", "output format (text, json)")
}

// runLuminance executes the luminance command.
func runLuminance(cmd *cobra.Command, args []string) error {
	norm, err := newNormalizer()
	if err != nil {
		return err
	}

	hex, err := norm.Normalize(args[0])
	if err != nil {
		return errors.New("invalid colour: input must be a CSS colour name or a 6-digit hex code")
	}

	lum := colour.Luminance(hex)

	switch luminanceFormat {
	case "text":
		fmt.Printf("%s %.6f\n", hex, lum)
	case "json":
		data, err := json.MarshalIndent(map[string]any{
			"colour":    hex,
			"luminance": lum,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", luminanceFormat)
	}

	return nil
}
