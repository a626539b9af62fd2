package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Predictor is any fitted model that predicts targets for a
// samples-by-features matrix. Satisfied by the symb model variants.
type Predictor interface {
	Predict(X *mat.Dense) (*mat.VecDense, error)
}

// Scores holds single-point accuracy metrics for one model on its training
// set and a held-out test set. No confidence intervals are computed; values
// are aggregated externally across seeds by simple averaging.
type Scores struct {
	MAETrain float64
	MAETest  float64
	MSETrain float64
	MSETest  float64
	R2Train  float64
	R2Test   float64
}

// GetScores computes train and test metrics from raw predictions. Identical
// true and predicted arrays yield MAE=0, MSE=0 and R²=1.
func GetScores(yTrain, predTrain, yTest, predTest *mat.VecDense) (Scores, error) {
	var s Scores
	var err error

	if s.MAETrain, err = MAE(yTrain, predTrain); err != nil {
		return Scores{}, err
	}
	if s.MAETest, err = MAE(yTest, predTest); err != nil {
		return Scores{}, err
	}
	if s.MSETrain, err = MSE(yTrain, predTrain); err != nil {
		return Scores{}, err
	}
	if s.MSETest, err = MSE(yTest, predTest); err != nil {
		return Scores{}, err
	}
	if s.R2Train, err = R2Score(yTrain, predTrain); err != nil {
		return Scores{}, err
	}
	if s.R2Test, err = R2Score(yTest, predTest); err != nil {
		return Scores{}, err
	}
	return s, nil
}

// Entry is one named metric value in a pair report, kept ordered for
// tabular export.
type Entry struct {
	Key   string
	Value float64
}

// PairScores evaluates two competing sampling strategies: a primary model
// fitted on Bayesian-optimization samples and a comparison model fitted on
// another strategy's samples (compSuffix names it, e.g. "rand" or "test").
// Both are scored on their own training sets and on the shared test set.
// Keys follow the error-metrics table layout: mae_train_smac,
// mae_train_rand, mae_test_smac, ...
func PairScores(
	primary, comparison Predictor,
	XTrainPrimary *mat.Dense, yTrainPrimary *mat.VecDense,
	XTrainComp *mat.Dense, yTrainComp *mat.VecDense,
	compSuffix string,
	XTest *mat.Dense, yTest *mat.VecDense,
) ([]Entry, error) {
	predTrainPrimary, err := primary.Predict(XTrainPrimary)
	if err != nil {
		return nil, err
	}
	predTrainComp, err := comparison.Predict(XTrainComp)
	if err != nil {
		return nil, err
	}
	predTestPrimary, err := primary.Predict(XTest)
	if err != nil {
		return nil, err
	}
	predTestComp, err := comparison.Predict(XTest)
	if err != nil {
		return nil, err
	}

	type metric struct {
		name string
		fn   func(yTrue, yPred *mat.VecDense) (float64, error)
	}
	metricSet := []metric{
		{name: "mae", fn: MAE},
		{name: "mse", fn: MSE},
		{name: "r2", fn: R2Score},
	}

	var entries []Entry
	add := func(key string, yTrue, yPred *mat.VecDense, fn func(a, b *mat.VecDense) (float64, error)) error {
		v, err := fn(yTrue, yPred)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Key: key, Value: v})
		return nil
	}

	for _, m := range metricSet {
		if err := add(fmt.Sprintf("%s_train_smac", m.name), yTrainPrimary, predTrainPrimary, m.fn); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("%s_train_%s", m.name, compSuffix), yTrainComp, predTrainComp, m.fn); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("%s_test_smac", m.name), yTest, predTestPrimary, m.fn); err != nil {
			return nil, err
		}
		if err := add(fmt.Sprintf("%s_test_%s", m.name, compSuffix), yTest, predTestComp, m.fn); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
