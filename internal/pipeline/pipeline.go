// Package pipeline orchestrates the analysis stages over one frame
// sequence: normalization, temporal features, and the rule gate.
//
// Pipeline logic:
//  1. Normalize every frame into the pelvis-origin canonical frame
//  2. Compute joint angles and their finite-difference derivatives
//  3. Evaluate the rule gate and settle the final per-frame label
//
// Each stage consumes an immutable input and returns a new sequence;
// the caller's input is never mutated, and no state survives between
// invocations. Callers may process independent sequences concurrently
// without synchronization.
package pipeline

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anirbans/formsense/internal/config"
	"github.com/anirbans/formsense/internal/kinematics"
	"github.com/anirbans/formsense/internal/normalize"
	"github.com/anirbans/formsense/internal/pose"
	"github.com/anirbans/formsense/internal/rules"
)

// Step numbers of the stages this pipeline applies. The numbering
// leaves gaps for the surrounding product pipeline: step 1 (pose
// estimation) and step 5 (classification/smoothing) run in external
// collaborators, and step 3 (body measurement) is an independent
// branch driven separately. Metadata keys written by those steps are
// threaded through unchanged.
const (
	StepNormalize = 2
	StepMeasure   = 3
	StepFeatures  = 4
	StepRuleGate  = 6
)

// Pipeline runs the analysis stages with a fixed configuration.
type Pipeline struct {
	cfg      config.Config
	features *kinematics.Stage
	gate     *rules.Stage
}

// New creates a pipeline from a validated configuration.
func New(cfg config.Config) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		features: kinematics.NewStage(cfg.Features),
		gate:     rules.NewStage(cfg.Rules),
	}
}

// Run processes the sequence through every stage and returns the
// enriched copy. An empty input is not a fault: it yields a
// pass-through copy whose metadata records the skipped stages, with a
// warning logged.
func (p *Pipeline) Run(seq pose.Sequence) pose.Sequence {
	runID := uuid.New().String()

	if seq.Empty() {
		log.Printf("run %s: empty sequence, passing through", runID)
		out := seq.Clone()
		out.Meta["run_id"] = runID
		out.Meta.MarkStage(StepNormalize, 0, false)
		out.Meta.MarkStage(StepFeatures, 0, false)
		out.Meta.MarkStage(StepRuleGate, 0, false)
		return out
	}

	log.Printf("run %s: processing %d frames", runID, len(seq.Frames))

	// Step 2: per-frame normalization (pure per frame, fanned out
	// across workers when configured).
	start := time.Now()
	out := p.applyPerFrame(seq, normalize.Frame)
	out.Meta["run_id"] = runID
	out.Meta.MarkStage(StepNormalize, time.Since(start), true)

	// Step 4: joint angles and derivatives. Derivatives need the whole
	// buffered series, so this stage is a sequential scan.
	start = time.Now()
	out = p.features.Apply(out)
	out.Meta.MarkStage(StepFeatures, time.Since(start), true)

	// Step 6: rule gate, again pure per frame.
	start = time.Now()
	out = p.applyPerFrame(out, p.gate.Apply)
	out.Meta.MarkStage(StepRuleGate, time.Since(start), true)

	return out
}

// applyPerFrame maps a pure per-frame transform over every frame of
// the sequence, fanning out across the configured number of workers.
func (p *Pipeline) applyPerFrame(seq pose.Sequence, fn func(pose.Frame) pose.Frame) pose.Sequence {
	out := seq.Clone()
	ids := out.IDs()

	workers := p.cfg.Pipeline.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || len(ids) < 2 {
		for _, id := range ids {
			out.Frames[id] = fn(out.Frames[id])
		}
		return out
	}

	// Workers read distinct indices and write distinct result slots,
	// so no locking is needed; the frame map is written only after
	// every worker has finished.
	results := make([]pose.Frame, len(ids))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(out.Frames[ids[i]])
			}
		}()
	}
	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, id := range ids {
		out.Frames[id] = results[i]
	}
	return out
}
