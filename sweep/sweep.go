// Package sweep orchestrates parsimony-coefficient sweeps over symbolic
// surrogate fits: it runs one fitting unit per (parsimony, sample size,
// sampling seed, symbolic seed) combination, converts each fitted model to
// its canonical expression, records complexity and accuracy metrics, and
// aggregates them into Pareto points for elbow selection.
//
// Data-dependent failures (parse failures, sampling shortfalls, prediction
// errors) are caught at the unit level, logged and skipped so a long sweep
// always completes with partial results. Structural errors (an unknown
// model variant) abort the sweep.
package sweep

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/symgo-ml/symgo/metrics"
	"github.com/symgo-ml/symgo/pareto"
	"github.com/symgo-ml/symgo/pkg/errors"
	"github.com/symgo-ml/symgo/pkg/log"
	"github.com/symgo-ml/symgo/symb"
)

// TrainTest is the sampled data for one unit: the training split produced
// by the unit's sampling strategy and the shared held-out test grid.
type TrainTest struct {
	XTrain *mat.Dense
	YTrain *mat.VecDense
	XTest  *mat.Dense
	YTest  *mat.VecDense
}

// FitFunc produces an externally fitted model and its data for one sweep
// unit. Returning a SamplingShortfallError skips the unit.
type FitFunc func(parsimony float64, u Unit) (symb.Model, *TrainTest, error)

// Config describes a sweep: the parsimony coefficients to evaluate and the
// unit grid to run for each of them.
type Config struct {
	ParsimonySpace []float64
	SampleSizes    []int
	SamplingSeeds  []int
	SymbSeeds      []int
	// NDim is the input dimensionality, used for the X0 -> x rename.
	NDim int
}

// Units expands the unit grid in deterministic order.
func (c Config) Units() []Unit {
	var units []Unit
	for _, n := range c.SampleSizes {
		for _, sseed := range c.SamplingSeeds {
			for _, rseed := range c.SymbSeeds {
				units = append(units, Unit{NSamples: n, SamplingSeed: sseed, SymbSeed: rseed})
			}
		}
	}
	return units
}

// Runner executes sweeps.
type Runner struct {
	Log log.Logger
	// NDecimals rounds expression literals; symb.NoRounding disables it.
	NDecimals int
	// Parallel runs the units of each parsimony value concurrently.
	Parallel bool
}

// Result accumulates the records of a completed sweep.
type Result struct {
	Complexity []ComplexityRecord
	Errors     []ErrorRecord
	// Skipped counts units dropped by the per-unit error policy.
	Skipped int
}

// Run executes the full sweep. Unit-level failures are logged and skipped;
// only structural errors abort.
func (r *Runner) Run(cfg Config, fit FitFunc) (*Result, error) {
	logger := r.Log
	if logger == nil {
		logger = log.GetLogger()
	}

	units := cfg.Units()
	result := &Result{}

	for _, parsimony := range cfg.ParsimonySpace {
		plog := logger.With("parsimony", parsimony)
		plog.Info("evaluating parsimony coefficient", "units", len(units))

		outcomes := make([]unitOutcome, len(units))
		runUnit := func(i int) {
			outcomes[i] = r.runUnit(cfg, parsimony, units[i], fit, plog)
		}

		if r.Parallel {
			parallelize(len(units), func(start, end int) {
				for i := start; i < end; i++ {
					runUnit(i)
				}
			})
		} else {
			for i := range units {
				runUnit(i)
			}
		}

		for _, o := range outcomes {
			if o.fatal != nil {
				return nil, o.fatal
			}
			if o.skipped {
				result.Skipped++
				continue
			}
			result.Complexity = append(result.Complexity, o.complexity)
			result.Errors = append(result.Errors, o.errors)
		}
	}
	return result, nil
}

type unitOutcome struct {
	complexity ComplexityRecord
	errors     ErrorRecord
	skipped    bool
	fatal      error
}

func (r *Runner) runUnit(cfg Config, parsimony float64, u Unit, fit FitFunc, logger log.Logger) unitOutcome {
	ulog := logger.With(
		"n_samples", u.NSamples,
		"sampling_seed", u.SamplingSeed,
		"symb_seed", u.SymbSeed,
	)

	model, data, err := fit(parsimony, u)
	if err != nil {
		var shortfall *errors.SamplingShortfallError
		if errors.As(err, &shortfall) {
			ulog.Warn("unit skipped: sampling shortfall", "error", err)
			errors.Warn(err)
			return unitOutcome{skipped: true}
		}
		ulog.Warn("unit skipped: fitting failed", "error", err)
		errors.Warn(err)
		return unitOutcome{skipped: true}
	}

	complexity := ComplexityRecord{
		Parsimony:                         parsimony,
		NSamples:                          u.NSamples,
		SamplingSeed:                      u.SamplingSeed,
		SymbSeed:                          u.SymbSeed,
		ProgramLengthBeforeSimplification: model.RawLength(),
	}

	conv, err := symb.Convert(model, cfg.NDim, r.NDecimals)
	if err != nil {
		var kindErr *errors.UnknownModelKindError
		if errors.As(err, &kindErr) {
			// Caller bug, not a data problem: abort the sweep.
			return unitOutcome{fatal: err}
		}
		// Parse or simplification failure: record an empty placeholder
		// expression with unknown complexity and continue.
		ulog.Warn("expression conversion failed", "error", err)
		complexity.ProgramOperations = symb.ComplexityUnknown
		complexity.Expression = ""
	} else {
		complexity.ProgramOperations = conv.OperationCount()
		complexity.Expression = conv.String()
	}

	predTrain, err := model.Predict(data.XTrain)
	if err != nil {
		ulog.Warn("unit skipped: train prediction failed", "error", err)
		return unitOutcome{skipped: true}
	}
	predTest, err := model.Predict(data.XTest)
	if err != nil {
		ulog.Warn("unit skipped: test prediction failed", "error", err)
		return unitOutcome{skipped: true}
	}
	scores, err := metrics.GetScores(data.YTrain, predTrain, data.YTest, predTest)
	if err != nil {
		ulog.Warn("unit skipped: scoring failed", "error", err)
		return unitOutcome{skipped: true}
	}

	return unitOutcome{
		complexity: complexity,
		errors: ErrorRecord{
			Parsimony:    parsimony,
			NSamples:     u.NSamples,
			SamplingSeed: u.SamplingSeed,
			SymbSeed:     u.SymbSeed,
			MAETrain:     scores.MAETrain,
			MAETest:      scores.MAETest,
			MSETrain:     scores.MSETrain,
			MSETest:      scores.MSETest,
			R2Train:      scores.R2Train,
			R2Test:       scores.R2Test,
		},
	}
}

// ParetoPoints aggregates the sweep into one point per parsimony value:
// mean operation count over records with known complexity, and the mean of
// the per-record test RMSEs (each record's sqrt(MSE test)). Parsimony
// values whose complexity records are all unknown are dropped.
func (res *Result) ParetoPoints() []pareto.Point {
	type agg struct {
		opsSum    float64
		opsCount  int
		rmseSum   float64
		rmseCount int
	}
	byParsimony := map[float64]*agg{}

	for _, rec := range res.Complexity {
		a := byParsimony[rec.Parsimony]
		if a == nil {
			a = &agg{}
			byParsimony[rec.Parsimony] = a
		}
		if rec.ProgramOperations != symb.ComplexityUnknown {
			a.opsSum += float64(rec.ProgramOperations)
			a.opsCount++
		}
	}
	for _, rec := range res.Errors {
		a := byParsimony[rec.Parsimony]
		if a == nil {
			a = &agg{}
			byParsimony[rec.Parsimony] = a
		}
		a.rmseSum += math.Sqrt(rec.MSETest)
		a.rmseCount++
	}

	var points []pareto.Point
	for parsimony, a := range byParsimony {
		if a.opsCount == 0 || a.rmseCount == 0 {
			continue
		}
		points = append(points, pareto.Point{
			Parsimony:  parsimony,
			Complexity: a.opsSum / float64(a.opsCount),
			RMSE:       a.rmseSum / float64(a.rmseCount),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Parsimony < points[j].Parsimony })
	return points
}
