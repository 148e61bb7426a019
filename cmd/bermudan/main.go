// bermudan — configurable Bermudan swaption payoff runner.
//
// The price command evaluates a single scenario (defaults match the
// demonstration scenario in the repository root). The batch command prices a
// JSON file of scenarios concurrently.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/meenmo/bermudan/batch"
	"github.com/meenmo/bermudan/swaption"
)

var (
	cfg     = viper.New()
	logger  = zap.NewNop()
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bermudan",
	Short: "Bermudan swaption payoff calculator",
	Long: `Prices Bermudan-style swaptions on a simplified fixed-for-floating swap:
the floating-rate path is given directly (no stochastic model), both legs
discount at the fixed rate, and exercise follows the earliest-profitable-date
policy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			cfg.SetConfigFile(configFile)
			if err := cfg.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		}
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			logger = l
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (JSON/YAML/TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-date evaluations")

	cfg.SetEnvPrefix("BERMUDAN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(batchCmd)
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single Bermudan swaption scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		path := swaption.RatePath(cast.ToFloat64Slice(cfg.Get("rates")))
		maturity := cfg.GetInt("maturity")
		if maturity == 0 {
			maturity = len(path)
		}

		option := swaption.Swaption{
			Swap: swaption.Swap{
				FixedRate: cfg.GetFloat64("fixed-rate"),
				Notional:  cfg.GetFloat64("notional"),
				PayRate:   cfg.GetFloat64("pay-rate"),
				Maturity:  maturity,
			},
			Strike: cfg.GetFloat64("strike"),
		}

		exercise, err := swaption.NewEvaluator(logger).BermudanPayoff(option, path)
		if err != nil {
			return err
		}
		if !exercise.Exercised {
			fmt.Println("Expired worthless")
			return nil
		}
		fmt.Printf("Present Value: %v\n", exercise.Value)
		fmt.Printf("Time %d\n", exercise.Time)
		return nil
	},
}

func init() {
	priceCmd.Flags().Float64Slice("rates", []float64{0.1, 0.1, 0.11, 0.001, 0.01}, "floating-rate path, one observation per period")
	priceCmd.Flags().Float64("fixed-rate", 0.03, "fixed leg coupon, decimal")
	priceCmd.Flags().Float64("notional", 1, "notional amount")
	priceCmd.Flags().Float64("pay-rate", 1, "payments per year (reserved)")
	priceCmd.Flags().Int("maturity", 0, "periods to maturity (default: rate path length)")
	priceCmd.Flags().Float64("strike", 0.04, "strike rate, decimal")
}

// batchScenario is the JSON file schema for batch pricing.
type batchScenario struct {
	Name      string    `json:"name"`
	RatePath  []float64 `json:"rate_path"`
	FixedRate float64   `json:"fixed_rate"`
	Notional  float64   `json:"notional"`
	PayRate   float64   `json:"pay_rate"`
	Maturity  int       `json:"maturity"`
	Strike    float64   `json:"strike"`
}

type batchResult struct {
	Name         string  `json:"name"`
	PresentValue float64 `json:"present_value"`
	Time         int     `json:"time"`
	Exercised    bool    `json:"exercised"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Price a JSON file of scenarios concurrently",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		workers, _ := cmd.Flags().GetInt("workers")

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		var inputs []batchScenario
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("failed to parse JSON input: %w", err)
		}

		scenarios := make([]batch.Scenario, 0, len(inputs))
		for _, in := range inputs {
			maturity := in.Maturity
			if maturity == 0 {
				maturity = len(in.RatePath)
			}
			scenarios = append(scenarios, batch.Scenario{
				Name: in.Name,
				Swaption: swaption.Swaption{
					Swap: swaption.Swap{
						FixedRate: in.FixedRate,
						Notional:  in.Notional,
						PayRate:   in.PayRate,
						Maturity:  maturity,
					},
					Strike: in.Strike,
				},
				Path: in.RatePath,
			})
		}

		results, err := batch.New(workers, logger).Price(context.Background(), scenarios)
		if err != nil {
			return err
		}

		out := make([]batchResult, 0, len(results))
		for _, r := range results {
			out = append(out, batchResult{
				Name:         r.Name,
				PresentValue: r.Exercise.Value,
				Time:         r.Exercise.Time,
				Exercised:    r.Exercise.Exercised,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	batchCmd.Flags().String("input", "", "JSON scenario file (array of scenarios)")
	batchCmd.Flags().Int("workers", 4, "max concurrent evaluations")
	_ = batchCmd.MarkFlagRequired("input")
}
