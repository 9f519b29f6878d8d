// Package report renders a priced contract for the caller: a human-readable
// parameter/price table for terminals and a JSON document for files or
// pipelines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Result is the full outcome of one pricing run: the input record, the
// derived fields the engine computed from it, and the price.
type Result struct {
	Params                pricing.Params `json:"params"`
	TimeToExpirationYears float64        `json:"time_to_expiration_years"`
	RiskFreeContinuous    float64        `json:"risk_free_continuous"`
	Price                 float64        `json:"price"`
	GeneratedAt           time.Time      `json:"generated_at"`
}

// FromContract prices the contract and assembles its result.
func FromContract(c *pricing.Contract) *Result {
	return &Result{
		Params:                c.Params(),
		TimeToExpirationYears: c.TimeToExpirationYears(),
		RiskFreeContinuous:    c.RiskFreeContinuous(),
		Price:                 c.Price(),
		GeneratedAt:           time.Now().UTC(),
	}
}

// WriteJSON writes the result as indented JSON to <outdir>/price.json.
func WriteJSON(res *Result, outdir string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "price.json"), b, 0644)
}

// RenderTable writes the result as a two-column table.
func RenderTable(w io.Writer, res *Result) {
	p := res.Params

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Parameter", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Option type", string(p.Type)})
	table.Append([]string{"Underlying price", fmt.Sprintf("%.4f", p.UnderlyingPrice)})
	table.Append([]string{"Strike", fmt.Sprintf("%.4f", p.Strike)})
	table.Append([]string{"Time to expiration", fmt.Sprintf("%g %s(s)", p.TimeToExpiration, p.TimeUnit)})
	table.Append([]string{"Time to expiration (years)", fmt.Sprintf("%.6f", res.TimeToExpirationYears)})
	table.Append([]string{"Risk-free rate (discrete)", fmt.Sprintf("%.6f", p.RiskFreeDiscrete)})
	table.Append([]string{"Risk-free rate (continuous)", fmt.Sprintf("%.6f", res.RiskFreeContinuous)})
	table.Append([]string{"Volatility", fmt.Sprintf("%.6f", p.Volatility)})
	table.Append([]string{"Option price", fmt.Sprintf("%.6f", res.Price)})

	table.Render()
}
