package core

import "context"

type OptionKey string

const (
	DrainOptionKey  OptionKey = "drain_options"
	WorkerOptionKey OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DrainOptions struct {
	DrainRemaining bool
}

// WithDrainRemaining controls whether cancel handlers forward items
// caught in flight (true) or drop them (false).
func WithDrainRemaining(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainRemaining: drain})
}

// WithWorkers caps the worker count pipelines read via GetWorkerMaxCount.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsDrainRemainingEnabled(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainRemaining
	}
	return defaultDrain
}
