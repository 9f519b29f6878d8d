package main

import (
	"encoding/json"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price one contract from flags or a JSON config file",
	Example: `  option-pricer price --type call --underlying 100 --strike 100 \
      --expires 1 --time-unit year --rate 0.05 --vol 0.2
  option-pricer price --config contract.json --json-out ./out`,
	Run: runPrice,
}

func init() {
	f := priceCmd.Flags()
	f.String("config", "", "path to a JSON parameter file (overrides the parameter flags)")
	f.String("type", "", `option type: "call" or "put"`)
	f.Float64("underlying", 0, "underlying asset price")
	f.Float64("strike", 0, "strike price")
	f.Float64("expires", 0, "time to expiration, in --time-unit units")
	f.String("time-unit", "year", "time unit: day, week or year (or d/w/y)")
	f.Float64("rate", 0, "discrete risk-free rate (default from PRICER_RISK_FREE)")
	f.Float64("vol", 0, "annualized volatility")
	f.String("json-out", "", "directory to also write the JSON report to")
}

func runPrice(cmd *cobra.Command, args []string) {
	params, err := collectParams(cmd)
	if err != nil {
		log.Fatalf("error reading parameters: %v", err)
	}

	contract, err := pricing.NewContract(params)
	if err != nil {
		log.Fatalf("%v", err)
	}

	res := report.FromContract(contract)
	report.RenderTable(os.Stdout, res)

	if dir, _ := cmd.Flags().GetString("json-out"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("could not create output dir %s: %v", dir, err)
		}
		if err := report.WriteJSON(res, dir); err != nil {
			log.Fatalf("writing JSON report: %v", err)
		}
	}
}

func collectParams(cmd *cobra.Command) (pricing.Params, error) {
	var p pricing.Params

	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return p, err
		}
		if err := json.Unmarshal(b, &p); err != nil {
			return p, err
		}
	} else {
		typ, _ := cmd.Flags().GetString("type")
		p.Type = pricing.OptionType(typ)
		p.UnderlyingPrice, _ = cmd.Flags().GetFloat64("underlying")
		p.Strike, _ = cmd.Flags().GetFloat64("strike")
		p.TimeToExpiration, _ = cmd.Flags().GetFloat64("expires")
		unit, _ := cmd.Flags().GetString("time-unit")
		p.TimeUnit = pricing.TimeUnit(unit)
		p.Volatility, _ = cmd.Flags().GetFloat64("vol")

		p.RiskFreeDiscrete, _ = cmd.Flags().GetFloat64("rate")
		if !cmd.Flags().Changed("rate") {
			if env := os.Getenv("PRICER_RISK_FREE"); env != "" {
				r, err := strconv.ParseFloat(env, 64)
				if err != nil {
					return p, err
				}
				p.RiskFreeDiscrete = r
			}
		}
	}

	if p.TimeUnit != "" {
		unit, err := pricing.ParseTimeUnit(string(p.TimeUnit))
		if err != nil {
			return p, err
		}
		p.TimeUnit = unit
	}
	return p, nil
}
