package crop

import "errors"

var (
	// ErrInvalidValue is returned when a measurement is not a number.
	ErrInvalidValue = errors.New("invalid feature value")

	// ErrUnknownLabel is returned when the classifier yields a label outside the crop table.
	ErrUnknownLabel = errors.New("unknown crop label")
)

// Kind classifies where a prediction failed.
type Kind string

const (
	KindInput Kind = "input"
	KindModel Kind = "model"
	KindLabel Kind = "label"
)

// PredictionError reports a failed prediction.
type PredictionError struct {
	Kind Kind
	Err  error
}

func (e *PredictionError) Error() string {
	return e.Err.Error()
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or an empty Kind when err is not a PredictionError.
func KindOf(err error) Kind {
	var pe *PredictionError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
