package npv

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/bermudan/swaption"
)

// PricingInput defines the JSON input schema for swap NPV.
//
// Conventions:
// - rates are in decimal (e.g., 0.03 means 3%)
// - rate_path holds one floating-rate observation per remaining period
type PricingInput struct {
	RatePath  []float64 `json:"rate_path"`
	FixedRate float64   `json:"fixed_rate"`
	Notional  float64   `json:"notional"`
	PayRate   float64   `json:"pay_rate"`
	Maturity  int       `json:"maturity"`
}

type PricingOutput struct {
	FixedLegPV    float64 `json:"fixed_leg_pv"`
	FloatingLegPV float64 `json:"floating_leg_pv"`
	TotalNPV      float64 `json:"total_npv"`
	Error         string  `json:"error,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("npv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}

	inputBytes, err := readInput(stdin, strings.TrimSpace(*inputPath))
	if err != nil {
		return writeError(stdout, fmt.Sprintf("failed to read input: %v", err))
	}

	var input PricingInput
	if err := json.Unmarshal(inputBytes, &input); err != nil {
		return writeError(stdout, fmt.Sprintf("failed to parse JSON input: %v", err))
	}

	swp := swaption.Swap{
		FixedRate: input.FixedRate,
		Notional:  input.Notional,
		PayRate:   input.PayRate,
		Maturity:  input.Maturity,
	}
	pv, err := swp.PVByLeg(input.RatePath)
	if err != nil {
		return writeError(stdout, err.Error())
	}

	outputBytes, _ := json.Marshal(PricingOutput{
		FixedLegPV:    pv.FixedLegPV,
		FloatingLegPV: pv.FloatingLegPV,
		TotalNPV:      pv.TotalPV,
	})
	fmt.Fprintln(stdout, string(outputBytes))
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  swaptionpv npv < input.json")
	fmt.Fprintln(w, "  swaptionpv npv -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read JSON input, calculate fixed-for-floating swap NPV, output JSON to stdout.")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func writeError(stdout io.Writer, msg string) int {
	outputBytes, _ := json.Marshal(PricingOutput{Error: msg})
	fmt.Fprintln(stdout, string(outputBytes))
	return 1
}
