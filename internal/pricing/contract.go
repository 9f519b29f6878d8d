package pricing

import "math"

// OptionType selects between the two valuation branches. There is no third
// state: anything other than Call or Put is rejected when the contract is
// built, never inside the pricing math.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Params is the fully populated parameter record a collaborator (CLI flags,
// interactive prompt, config file, REST body) hands to the engine.
// TimeToExpiration is expressed in the chosen TimeUnit; normalization to years
// happens at construction.
type Params struct {
	Type             OptionType `json:"type"`               // "call" or "put"
	UnderlyingPrice  float64    `json:"underlying_price"`   // spot, must be > 0
	Strike           float64    `json:"strike"`             // must be > 0
	TimeToExpiration float64    `json:"time_to_expiration"` // in TimeUnit units, must be > 0
	TimeUnit         TimeUnit   `json:"time_unit"`          // day, week or year
	RiskFreeDiscrete float64    `json:"risk_free_discrete"` // simple annualized rate, must be > -1
	Volatility       float64    `json:"volatility"`         // annualized, must be > 0
}

// Contract is a validated, immutable European vanilla option. The derived
// fields (time to expiration in years, continuous risk-free rate) are computed
// once from the inputs and frozen; they are never settable on their own.
type Contract struct {
	params Params

	isCall             bool
	timeToExpiryYears  float64
	riskFreeContinuous float64
}

// NewContract validates p and builds a contract. Validation is fail-fast and
// atomic: the first violated constraint returns an InvalidParameterError (or
// InvalidTimeUnitError for a bad unit) and no contract exists.
//
// Constraints: underlying price, strike, volatility and time to expiration
// strictly positive; time unit from the closed set; discrete risk-free rate
// strictly greater than -1 so that ln(1+r) is defined. NaN and Inf never pass.
func NewContract(p Params) (*Contract, error) {
	var isCall bool
	switch p.Type {
	case Call:
		isCall = true
	case Put:
		isCall = false
	default:
		return nil, InvalidParameterError{Field: "type", Reason: `must be "call" or "put"`}
	}

	if err := requirePositive("underlying_price", p.UnderlyingPrice); err != nil {
		return nil, err
	}
	if err := requirePositive("strike", p.Strike); err != nil {
		return nil, err
	}
	if err := requirePositive("time_to_expiration", p.TimeToExpiration); err != nil {
		return nil, err
	}
	if err := requirePositive("volatility", p.Volatility); err != nil {
		return nil, err
	}

	divisor := p.TimeUnit.Divisor()
	if divisor <= 0 {
		return nil, InvalidTimeUnitError{Selector: string(p.TimeUnit)}
	}

	if math.IsNaN(p.RiskFreeDiscrete) || math.IsInf(p.RiskFreeDiscrete, 0) {
		return nil, InvalidParameterError{Field: "risk_free_discrete", Reason: "must be a finite number"}
	}
	if p.RiskFreeDiscrete <= -1 {
		return nil, InvalidParameterError{Field: "risk_free_discrete", Reason: "must be greater than -1"}
	}

	return &Contract{
		params:             p,
		isCall:             isCall,
		timeToExpiryYears:  p.TimeToExpiration / divisor,
		riskFreeContinuous: math.Log1p(p.RiskFreeDiscrete),
	}, nil
}

func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidParameterError{Field: field, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return InvalidParameterError{Field: field, Reason: "must be greater than zero"}
	}
	return nil
}

// Params returns the input record the contract was built from.
func (c *Contract) Params() Params { return c.params }

// IsCall reports whether the contract is a call.
func (c *Contract) IsCall() bool { return c.isCall }

// TimeToExpirationYears is the expiry normalized to fractional years
// (raw value divided by the time unit's units-per-year).
func (c *Contract) TimeToExpirationYears() float64 { return c.timeToExpiryYears }

// RiskFreeContinuous is the continuously compounded equivalent of the input
// discrete rate, ln(1 + r).
func (c *Contract) RiskFreeContinuous() float64 { return c.riskFreeContinuous }
