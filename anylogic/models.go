package anylogic

// Run statuses reported by the Cloud.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusStopped   = "STOPPED"
)

// Model is a simulation model registered in the Cloud.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Published   bool   `json:"published,omitempty"`
}

// ModelVersion is one uploaded revision of a model. The Cloud attaches
// the experiment templates, with their default inputs, to the version
// record so that input sets can be assembled client-side.
type ModelVersion struct {
	ID                  string               `json:"id"`
	Version             int                  `json:"version"`
	ExperimentTemplates []ExperimentTemplate `json:"experimentTemplates"`
}

// ExperimentTemplate is a named parameter preset defined in the model.
type ExperimentTemplate struct {
	Name   string       `json:"name"`
	Inputs []InputValue `json:"inputs"`
}

// InputValue is one named model input and its value.
type InputValue struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Units string `json:"units,omitempty"`
	Value any    `json:"value"`
}

// OutputValue is one named output of a finished run.
type OutputValue struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Units string `json:"units,omitempty"`
	Value any    `json:"value"`
}

// Run is a single remote execution of a model version.
type Run struct {
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Outputs []OutputValue `json:"outputs,omitempty"`
}

// Terminal reports whether the run has reached a final state.
func (r *Run) Terminal() bool {
	switch r.Status {
	case StatusCompleted, StatusFailed, StatusStopped:
		return true
	}
	return false
}
