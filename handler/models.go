package handler

// RunRequest is the body of POST /simulations/run. Model and experiment
// names fall back to the configured defaults when omitted.
type RunRequest struct {
	ServerCapacity int    `json:"server_capacity" binding:"required,min=1"`
	ModelName      string `json:"model_name"`
	ExperimentName string `json:"experiment_name"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
