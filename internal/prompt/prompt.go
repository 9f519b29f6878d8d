// Package prompt implements the interactive parameter-entry session: it walks
// the user through each Black-Scholes input, re-asking on bad entries, and
// only ever hands a fully populated record to the pricing engine. All reads
// and writes go through injected streams so sessions are scriptable in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

const version = "1.0"

// Session reads parameters from in and writes prompts and results to out.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// Run shows the banner, then prices contracts until the user declines to
// continue or the input stream ends.
func (s *Session) Run() error {
	s.banner()

	for {
		params, err := s.ReadParams()
		if err != nil {
			return err
		}

		contract, err := pricing.NewContract(params)
		if err != nil {
			// per-field prompts catch most bad input; anything left
			// (negative strike, rate at -1) lands here
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}

		res := report.FromContract(contract)
		fmt.Fprintln(s.out, "-------------------------")
		report.RenderTable(s.out, res)
		fmt.Fprintln(s.out)

		again, err := s.readYesNo("Continue with another option? Y for Yes, N for No: ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) banner() {
	fmt.Fprintf(s.out, "Financial options pricer v%s\n", version)
	fmt.Fprintln(s.out, "European vanilla options pricing")
}

// ReadParams collects one complete parameter record, re-prompting on invalid
// entries. It returns io.EOF (wrapped) if the input stream ends mid-session.
func (s *Session) ReadParams() (pricing.Params, error) {
	var p pricing.Params

	var err error
	if p.UnderlyingPrice, err = s.readFloat("underlying asset price"); err != nil {
		return p, err
	}
	if p.Strike, err = s.readFloat("strike (price of exercise)"); err != nil {
		return p, err
	}
	if p.TimeUnit, err = s.readTimeUnit(); err != nil {
		return p, err
	}
	if p.TimeToExpiration, err = s.readFloat("time to expiration"); err != nil {
		return p, err
	}
	if p.Volatility, err = s.readFloat("volatility"); err != nil {
		return p, err
	}
	if p.RiskFreeDiscrete, err = s.readFloat("risk-free rate (discrete)"); err != nil {
		return p, err
	}
	if p.Type, err = s.readOptionType(); err != nil {
		return p, err
	}

	return p, nil
}

func (s *Session) readLine(promptText string) (string, error) {
	fmt.Fprint(s.out, promptText)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed: %w", io.EOF)
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) readFloat(label string) (float64, error) {
	for {
		line, err := s.readLine(fmt.Sprintf("Please input %s: ", label))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "error: wrong input (should be a number)")
			continue
		}
		return v, nil
	}
}

func (s *Session) readOptionType() (pricing.OptionType, error) {
	for {
		line, err := s.readLine("C for a Call option, P for a Put: ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "c":
			return pricing.Call, nil
		case "p":
			return pricing.Put, nil
		}
		fmt.Fprintln(s.out, "Please input either C (Call) or P (Put)")
	}
}

func (s *Session) readTimeUnit() (pricing.TimeUnit, error) {
	for {
		line, err := s.readLine("Please input a time unit - days (D), weeks (W), years (Y): ")
		if err != nil {
			return "", err
		}
		unit, err := pricing.ParseTimeUnit(line)
		if err != nil {
			logger.Tracef("time unit rejected: %v", err)
			fmt.Fprintln(s.out, "error: incorrect input.")
			continue
		}
		return unit, nil
	}
}

func (s *Session) readYesNo(promptText string) (bool, error) {
	for {
		line, err := s.readLine(promptText)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(s.out, "error: wrong input. Please input either Y or N")
	}
}
