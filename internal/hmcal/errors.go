// Public domain.

package hmcal

import "fmt"

// ConfigurationError reports configuration that prevents any calibration.
type ConfigurationError struct {
	What string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return "configuration: " + e.What
	}
	return fmt.Sprintf("configuration: %s: %v", e.What, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InsufficientDataError reports too few samples for a computation.
type InsufficientDataError struct {
	Quantity   string
	Have, Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: have %d, need %d",
		e.Quantity, e.Have, e.Need)
}

// DegenerateCalibrationError reports a zero or near zero denominator, or
// a calibration result with no physical meaning.
type DegenerateCalibrationError struct {
	Quantity string
	Value    float64
}

func (e *DegenerateCalibrationError) Error() string {
	return fmt.Sprintf("degenerate calibration: %s = %g", e.Quantity, e.Value)
}

// ChannelError attaches a channel number to a per channel failure.
type ChannelError struct {
	Channel int
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %d: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }
