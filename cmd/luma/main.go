// Luma - a WCAG colour contrast checker
//
// Luma computes WCAG 2.x contrast ratios between colour pairs and
// classifies them against the AA/AAA readability thresholds.
package main

import (
	"github.com/jmylchreest/luma/internal/cli"
)

func main() {
	cli.Execute()
}
