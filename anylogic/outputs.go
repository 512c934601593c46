package anylogic

import "fmt"

// Outputs is the set of named values produced by a finished run.
type Outputs []OutputValue

// Value reads one named output as a float64.
func (o Outputs) Value(name string) (float64, error) {
	for _, ov := range o {
		if ov.Name != name {
			continue
		}
		switch v := ov.Value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		default:
			return 0, fmt.Errorf("anylogic: output %q is not numeric (%T)", name, ov.Value)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutput, name)
}

// Raw returns all output items as received from the Cloud.
func (o Outputs) Raw() []OutputValue {
	return o
}
