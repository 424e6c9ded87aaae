package worker

import (
	"context"

	"github.com/ldanko/idleheroes/internal/engine"
	"github.com/ldanko/idleheroes/internal/logger"
)

// TickJob advances every hero by one turn when processed. It is the job the
// scheduler enqueues on the main tick interval.
type TickJob struct {
	Engine *engine.Engine
}

func (j *TickJob) Process(ctx context.Context) error {
	processed := j.Engine.ProcessAllHeroes(ctx)
	logger.FromContext(ctx).Info("Hero tick job finished", "processed", processed)
	return nil
}

// GlobalEventJob fires one world-wide announcement. It runs on its own,
// slower schedule than hero ticks.
type GlobalEventJob struct {
	Engine *engine.Engine
}

func (j *GlobalEventJob) Process(ctx context.Context) error {
	j.Engine.RunGlobalEvent(ctx)
	return nil
}
