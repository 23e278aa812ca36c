package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/image"
)

var (
	// Matrix command flags
	matrixColours int
	matrixFormat  string
	matrixOutput  string
)

// matrixPair is one foreground/background combination in JSON output.
type matrixPair struct {
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Ratio      float64      `json:"ratio"`
	Normal     colour.Level `json:"normal_text"`
	Large      colour.Level `json:"large_text"`
}

// matrixCmd represents the matrix command
var matrixCmd = &cobra.Command{
	Use:   "matrix <image>",
	Short: "Contrast matrix of an image's dominant colours",
	Long: `Rank the dominant colours of an image and print the pairwise WCAG
contrast ratios between them.

Useful for judging whether the colours a wallpaper or screenshot leans on
can carry readable text against each other.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Matrix of the 6 most dominant colours (default)
  luma matrix wallpaper.jpg

  # Widen to 10 colours
  luma matrix --colours 10 wallpaper.png

  # Pairwise results as JSON
  luma matrix --format json screenshot.png`,
	Args: cobra.ExactArgs(1),
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().IntVarP(&matrixColours, "colours", "c", 6, "number of dominant colours to compare (2-32)")
	matrixCmd.Flags().StringVarP(&matrixFormat, "format", "f", "table", "output format (table, json)")
	matrixCmd.Flags().StringVarP(&matrixOutput, "output", "o", "", "output file (default: stdout)")
}

// runMatrix executes the matrix command.
func runMatrix(cmd *cobra.Command, args []string) error {
	if matrixColours < 2 || matrixColours > 32 {
		return fmt.Errorf("invalid colour count: %d (valid: 2-32)", matrixColours)
	}

	imagePath := args[0]

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", imagePath)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	colours := colour.DominantColours(img, matrixColours)
	if len(colours) < 2 {
		return fmt.Errorf("image has fewer than 2 distinct colours")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Comparing %d dominant colours\n", len(colours))
	}

	output, err := formatMatrix(colours, matrixFormat)
	if err != nil {
		return err
	}

	if matrixOutput != "" {
		if err := os.WriteFile(matrixOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatMatrix renders the pairwise contrast of the given colours.
func formatMatrix(colours []colour.RGB, format string) (string, error) {
	switch format {
	case "table":
		return formatMatrixTable(colours), nil
	case "json":
		pairs := matrixPairs(colours)
		data, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: table, json)", format)
	}
}

// formatMatrixTable renders an n-by-n ratio table.
func formatMatrixTable(colours []colour.RGB) string {
	headers := make([]string, len(colours)+1)
	headers[0] = ""
	for i, c := range colours {
		headers[i+1] = c.Hex()
	}

	table := NewTable(headers)
	for _, a := range colours {
		row := make([]string, len(colours)+1)
		row[0] = a.Hex()
		for j, b := range colours {
			row[j+1] = fmt.Sprintf("%.2f", colour.ContrastRatioLum(
				colour.LuminanceRGB(a), colour.LuminanceRGB(b)))
		}
		table.AddRow(row)
	}

	return table.Render()
}

// matrixPairs lists each unordered colour pair once with its compliance
// levels.
func matrixPairs(colours []colour.RGB) []matrixPair {
	pairs := make([]matrixPair, 0, len(colours)*(len(colours)-1)/2)
	for i := 0; i < len(colours); i++ {
		for j := i + 1; j < len(colours); j++ {
			ratio := colour.ContrastRatioLum(
				colour.LuminanceRGB(colours[i]), colour.LuminanceRGB(colours[j]))
			pairs = append(pairs, matrixPair{
				Foreground: colours[i].Hex(),
				Background: colours[j].Hex(),
				Ratio:      ratio,
				Normal:     colour.ComplianceNormal(ratio),
				Large:      colour.ComplianceLarge(ratio),
			})
		}
	}
	return pairs
}
