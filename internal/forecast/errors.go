package forecast

import "errors"

var (
	// ErrNotConfigured means an indicator is missing from the model
	// configuration table. This is a configuration error and is detected
	// before any fitting occurs.
	ErrNotConfigured = errors.New("indicator not present in model configuration")

	// ErrInsufficientData means a (country, indicator) pair has fewer than
	// two usable historical points, which cannot support a fit.
	ErrInsufficientData = errors.New("insufficient historical data for fit")

	// ErrMissingInput means a required lag predictor value is absent for a
	// country/year. Missing inputs are never replaced by fabricated zeros.
	ErrMissingInput = errors.New("missing predictor value")
)

// PairError records why one (country, indicator) pair was skipped. A pair
// failure never aborts the rest of the batch.
type PairError struct {
	Country   string `json:"country"`
	Indicator string `json:"indicator"`
	Err       error  `json:"-"`
	Reason    string `json:"reason"`
}

func (e PairError) Error() string {
	return e.Country + "/" + e.Indicator + ": " + e.Err.Error()
}

func (e PairError) Unwrap() error {
	return e.Err
}

func newPairError(country, indicator string, err error) PairError {
	return PairError{
		Country:   country,
		Indicator: indicator,
		Err:       err,
		Reason:    err.Error(),
	}
}
