package simulation

import "simgate/anylogic"

// RunParams are the parameters of one gateway run request.
type RunParams struct {
	ServerCapacity int
	ModelName      string
	ExperimentName string
}

// RunResult is the flat record returned for a finished run. Field
// values are taken from the vendor response as-is.
type RunResult struct {
	SimulationID      string                 `json:"simulation_id"`
	ServerCapacity    int                    `json:"server_capacity"`
	MeanQueueSize     float64                `json:"mean_queue_size"`
	ServerUtilization float64                `json:"server_utilization"`
	RawOutputs        []anylogic.OutputValue `json:"raw_outputs"`
	Status            string                 `json:"status"`
}
