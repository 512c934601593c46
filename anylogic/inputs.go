package anylogic

import "fmt"

// Inputs is an input set assembled from an experiment template. The
// template's defaults are copied in; individual values can then be
// overridden before starting a run.
type Inputs struct {
	experiment string
	names      []string
	values     map[string]InputValue
}

// InputsFromExperiment builds an input set from the named experiment
// template of the given model version.
func InputsFromExperiment(version *ModelVersion, experiment string) (*Inputs, error) {
	for _, tmpl := range version.ExperimentTemplates {
		if tmpl.Name != experiment {
			continue
		}
		in := &Inputs{
			experiment: experiment,
			values:     make(map[string]InputValue, len(tmpl.Inputs)),
		}
		for _, iv := range tmpl.Inputs {
			in.names = append(in.names, iv.Name)
			in.values[iv.Name] = iv
		}
		return in, nil
	}
	return nil, fmt.Errorf("%w: %q in version %s", ErrUnknownExperiment, experiment, version.ID)
}

// Experiment returns the name of the template this set was built from.
func (in *Inputs) Experiment() string {
	return in.experiment
}

// Set overrides a named input value. The name must exist in the
// experiment template.
func (in *Inputs) Set(name string, value any) error {
	iv, ok := in.values[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInput, name)
	}
	iv.Value = value
	in.values[name] = iv
	return nil
}

// Values returns the inputs in template order.
func (in *Inputs) Values() []InputValue {
	out := make([]InputValue, 0, len(in.names))
	for _, name := range in.names {
		out = append(out, in.values[name])
	}
	return out
}
