package simulation

import (
	"context"
	"fmt"

	"simgate/anylogic"
	"simgate/logging"
)

var log = logging.GetLogger()

// capacityInput is the model input the capacity parameter maps to.
const capacityInput = "Server capacity"

// CloudClient is the slice of the vendor client the service uses.
type CloudClient interface {
	Models(ctx context.Context) ([]anylogic.Model, error)
	ModelByName(ctx context.Context, name string) (*anylogic.Model, error)
	LatestVersion(ctx context.Context, modelID string) (*anylogic.ModelVersion, error)
	StartRun(ctx context.Context, versionID string, inputs *anylogic.Inputs) (*anylogic.Run, error)
	Outputs(ctx context.Context, runID string) (anylogic.Outputs, error)
}

// OutputNames are the vendor output names the two response metrics are
// read from.
type OutputNames struct {
	MeanQueueSize     string
	ServerUtilization string
}

// Service runs simulations in the Cloud and reshapes the results.
type Service struct {
	client  CloudClient
	outputs OutputNames
}

// NewService creates a Service on top of the given vendor client.
func NewService(client CloudClient, outputs OutputNames) *Service {
	return &Service{
		client:  client,
		outputs: outputs,
	}
}

// Models lists the models available in the Cloud.
func (s *Service) Models(ctx context.Context) ([]anylogic.Model, error) {
	return s.client.Models(ctx)
}

// Run executes one simulation run: resolve the model and its latest
// version, build inputs from the named experiment with the capacity
// override, start the run, and wait for its outputs.
func (s *Service) Run(ctx context.Context, params RunParams) (*RunResult, error) {
	model, err := s.client.ModelByName(ctx, params.ModelName)
	if err != nil {
		return nil, fmt.Errorf("fetching model %q: %w", params.ModelName, err)
	}

	version, err := s.client.LatestVersion(ctx, model.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching latest version of %q: %w", params.ModelName, err)
	}

	inputs, err := anylogic.InputsFromExperiment(version, params.ExperimentName)
	if err != nil {
		return nil, err
	}
	if err := inputs.Set(capacityInput, params.ServerCapacity); err != nil {
		return nil, err
	}

	run, err := s.client.StartRun(ctx, version.ID, inputs)
	if err != nil {
		return nil, fmt.Errorf("starting run: %w", err)
	}
	log.Debugf("Started run %s (model %q, version %d, capacity %d)",
		run.ID, params.ModelName, version.Version, params.ServerCapacity)

	outputs, err := s.client.Outputs(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching outputs of run %s: %w", run.ID, err)
	}

	meanQueue, err := outputs.Value(s.outputs.MeanQueueSize)
	if err != nil {
		return nil, err
	}
	utilization, err := outputs.Value(s.outputs.ServerUtilization)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		SimulationID:      run.ID,
		ServerCapacity:    params.ServerCapacity,
		MeanQueueSize:     meanQueue,
		ServerUtilization: utilization,
		RawOutputs:        outputs.Raw(),
		Status:            anylogic.StatusCompleted,
	}, nil
}
