package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/luma/internal/colour"
)

func sampleResult(t *testing.T) colour.Result {
	t.Helper()
	res, err := colour.Evaluate("red", "white")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	return res
}

func TestFormatResultText(t *testing.T) {
	output, err := formatResult(sampleResult(t), "text")
	if err != nil {
		t.Fatalf("formatResult returned error: %v", err)
	}

	for _, want := range []string{
		"Foreground:  #ff0000",
		"Background:  #ffffff",
		"Ratio:       4.00:1",
		"Normal text: fail",
		"Large text:  AA",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q:\n%s", want, output)
		}
	}
}

func TestFormatResultJSON(t *testing.T) {
	output, err := formatResult(sampleResult(t), "json")
	if err != nil {
		t.Fatalf("formatResult returned error: %v", err)
	}

	var decoded colour.Result
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("JSON output did not decode: %v", err)
	}
	if decoded.Foreground != "#ff0000" || decoded.Large != colour.LevelAA {
		t.Errorf("decoded result = %+v", decoded)
	}
}

func TestFormatResultInvalidFormat(t *testing.T) {
	if _, err := formatResult(sampleResult(t), "xml"); err == nil {
		t.Fatal("formatResult with invalid format succeeded, want error")
	}
}

func TestPreviewPanel(t *testing.T) {
	output := previewPanel(sampleResult(t))

	if !strings.Contains(output, "\033[48;2;255;0;0m") {
		t.Errorf("preview missing foreground swatch:\n%q", output)
	}
	if !strings.Contains(output, "The quick brown fox") {
		t.Errorf("preview missing sample text:\n%q", output)
	}
	if !strings.HasSuffix(strings.TrimRight(output, "\n"), "\033[0m") {
		t.Errorf("preview does not end with a reset:\n%q", output)
	}
}

func TestFormatMatrixTable(t *testing.T) {
	colours := []colour.RGB{
		{R: 255, G: 255, B: 255},
		{},
	}

	output, err := formatMatrix(colours, "table")
	if err != nil {
		t.Fatalf("formatMatrix returned error: %v", err)
	}
	if !strings.Contains(output, "#ffffff") || !strings.Contains(output, "#000000") {
		t.Errorf("table missing colour headers:\n%s", output)
	}
	if !strings.Contains(output, "21.00") {
		t.Errorf("table missing white/black ratio:\n%s", output)
	}
	if !strings.Contains(output, "1.00") {
		t.Errorf("table missing identity ratio:\n%s", output)
	}
}

func TestFormatMatrixJSON(t *testing.T) {
	colours := []colour.RGB{
		{R: 255, G: 255, B: 255},
		{},
		{R: 255},
	}

	output, err := formatMatrix(colours, "json")
	if err != nil {
		t.Fatalf("formatMatrix returned error: %v", err)
	}

	var pairs []matrixPair
	if err := json.Unmarshal([]byte(output), &pairs); err != nil {
		t.Fatalf("JSON output did not decode: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs for 3 colours, want 3", len(pairs))
	}
	if pairs[0].Foreground != "#ffffff" || pairs[0].Background != "#000000" {
		t.Errorf("first pair = %+v", pairs[0])
	}
	if pairs[0].Normal != colour.LevelAAA {
		t.Errorf("white/black normal level = %v, want AAA", pairs[0].Normal)
	}
}

func TestFormatMatrixInvalidFormat(t *testing.T) {
	if _, err := formatMatrix([]colour.RGB{{}, {R: 255}}, "csv"); err == nil {
		t.Fatal("formatMatrix with invalid format succeeded, want error")
	}
}
