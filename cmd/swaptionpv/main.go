package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/bermudan/cmd/swaptionpv/internal/bermudan"
	"github.com/meenmo/bermudan/cmd/swaptionpv/internal/npv"
	"github.com/meenmo/bermudan/cmd/swaptionpv/internal/payoff"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "npv":
		return npv.Run(args[1:], stdin, stdout, stderr)
	case "payoff":
		return payoff.Run(args[1:], stdin, stdout, stderr)
	case "bermudan":
		return bermudan.Run(args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swaptionpv <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  npv       Fixed-for-floating swap NPV over a rate path")
	fmt.Fprintln(w, "  payoff    European swaption exercise value at the current date")
	fmt.Fprintln(w, "  bermudan  Bermudan earliest-exercise scan over the rate path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `swaptionpv <command> -h` for command-specific help.")
}
