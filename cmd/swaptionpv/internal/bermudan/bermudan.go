package bermudan

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/bermudan/swaption"
)

// PricingInput defines the JSON input schema for the Bermudan exercise scan.
//
// Conventions:
// - rates are in decimal (e.g., 0.04 means 4%)
// - rate_path holds one floating-rate observation per period, length = maturity
type PricingInput struct {
	RatePath  []float64 `json:"rate_path"`
	FixedRate float64   `json:"fixed_rate"`
	Notional  float64   `json:"notional"`
	PayRate   float64   `json:"pay_rate"`
	Maturity  int       `json:"maturity"`
	Strike    float64   `json:"strike"`
}

type PricingOutput struct {
	PresentValue float64 `json:"present_value"`
	Time         int     `json:"time"`
	Exercised    bool    `json:"exercised"`
	Error        string  `json:"error,omitempty"`
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bermudan", flag.ContinueOnError)
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

	option := swaption.Swaption{
		Swap: swaption.Swap{
			FixedRate: input.FixedRate,
			Notional:  input.Notional,
			PayRate:   input.PayRate,
			Maturity:  input.Maturity,
		},
		Strike: input.Strike,
	}
	exercise, err := swaption.BermudanPayoff(option, input.RatePath)
	if err != nil {
		return writeError(stdout, err.Error())
	}

	outputBytes, _ := json.Marshal(PricingOutput{
		PresentValue: exercise.Value,
		Time:         exercise.Time,
		Exercised:    exercise.Exercised,
	})
	fmt.Fprintln(stdout, string(outputBytes))
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  swaptionpv bermudan < input.json")
	fmt.Fprintln(w, "  swaptionpv bermudan -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read JSON input, run the earliest-exercise Bermudan scan, output JSON to stdout.")
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
