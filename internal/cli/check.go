package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/luma/internal/colour"
)

var (
	// Check command flags
	checkFormat   string
	checkOutput   string
	checkPreview  bool
	checkMinLevel string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <foreground> <background>",
	Short: "Check the contrast between two colours",
	Long: `Check a foreground/background colour pair against the WCAG 2.x
contrast thresholds.

Colours may be CSS colour names or hex codes (with or without a leading #).
The contrast ratio is reported together with the compliance level for
normal-size text (AA at 4.5:1, AAA at 7:1) and large text (AA at 3:1,
AAA at 4.5:1).

Examples:
  # Named colours
  luma check red white

  # Hex codes, case-insensitive, # optional
  luma check "#1A2B3C" fafafa

  # JSON output
  luma check --format json navy cornsilk

  # Show an ANSI preview of the pair
  luma check --preview teal black

  # Fail (exit 1) unless the pair reaches AA for normal text
  luma check --min-level aa "#777777" white`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "output file (default: stdout)")
	checkCmd.Flags().BoolVarP(&checkPreview, "preview", "p", false, "show an ANSI preview of the colour pair")
	checkCmd.Flags().StringVar(&checkMinLevel, "min-level", "", "minimum normal-text level to pass (aa, aaa)")
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	norm, err := newNormalizer()
	if err != nil {
		return err
	}

	res, err := norm.Evaluate(args[0], args[1])
	if err != nil {
		if errors.Is(err, colour.ErrInvalidColour) {
			return errors.New("invalid colour: input must be a CSS colour name or a 6-digit hex code")
		}
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Normalized %q -> %s, %q -> %s\n",
			args[0], res.Foreground, args[1], res.Background)
	}

	output, err := formatResult(res, checkFormat)
	if err != nil {
		return err
	}

	if checkPreview && checkOutput == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		output += previewPanel(res)
	}

	if checkOutput != "" {
		if err := os.WriteFile(checkOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Print(output)
		}
	}

	if checkMinLevel != "" {
		min, err := colour.ParseLevel(checkMinLevel)
		if err != nil {
			return err
		}
		if !res.Normal.AtLeast(min) {
			return fmt.Errorf("contrast %.2f:1 is below %s for normal text", res.Ratio, min)
		}
	}

	return nil
}

// formatResult renders an evaluation result in the requested format.
func formatResult(res colour.Result, format string) (string, error) {
	switch format {
	case "text":
		var b strings.Builder
		fmt.Fprintf(&b, "Foreground:  %s\n", res.Foreground)
		fmt.Fprintf(&b, "Background:  %s\n", res.Background)
		fmt.Fprintf(&b, "Ratio:       %.2f:1\n", res.Ratio)
		fmt.Fprintf(&b, "Normal text: %s\n", res.Normal)
		fmt.Fprintf(&b, "Large text:  %s\n", res.Large)
		return b.String(), nil
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: text, json)", format)
	}
}

// previewPanel renders ANSI swatches for both colours and the pair
// combined.
func previewPanel(res colour.Result) string {
	fg := colour.HexToRGB(res.Foreground)
	bg := colour.HexToRGB(res.Background)

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s foreground %s\n", colour.Swatch(fg, 8), res.Foreground)
	fmt.Fprintf(&b, "%s background %s\n", colour.Swatch(bg, 8), res.Background)
	fmt.Fprintf(&b, "%s\n", colour.PairPreview(fg, bg, "The quick brown fox"))
	return b.String()
}
