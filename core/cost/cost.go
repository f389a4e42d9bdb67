package cost

import "fmt"

// ToolMetrics describes the cost and performance characteristics of one tool.
// It is advertised alongside the tool description so callers (and the model,
// when the provider surfaces it) can weigh cheap local tools against paid
// external APIs.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0.001,
//	    Currency:                "USD",
//	    CostDescription:         "per API call",
//	    Accuracy:                0.95,
//	    AverageDurationInMillis: 350,
//	}
type ToolMetrics struct {
	// Amount is the cost value for executing this tool once
	Amount float64 `json:"amount"`

	// Currency is the currency or unit for the cost (e.g., "USD", "EUR", "credits")
	Currency string `json:"currency,omitempty"`

	// CostDescription provides additional context about the cost
	// (e.g., "per API call", "local computation")
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy represents the accuracy/reliability score (0.0 to 1.0)
	// Higher values indicate more accurate/reliable results
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical execution time in milliseconds
	AverageDurationInMillis int64 `json:"average_duration_in_millis,omitempty"`
}

// String returns a formatted string representation of the cost.
func (tm ToolMetrics) String() string {
	currency := tm.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", tm.Amount, currency)

	if tm.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, tm.CostDescription)
	}

	return result
}

// IsFree reports whether executing the tool carries no monetary cost.
func (tm ToolMetrics) IsFree() bool {
	return tm.Amount == 0
}
