package metrics

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// constantModel predicts a fixed value for every sample.
type constantModel struct {
	value float64
}

func (c constantModel) Predict(X *mat.Dense) (*mat.VecDense, error) {
	rows, _ := X.Dims()
	out := make([]float64, rows)
	for i := range out {
		out[i] = c.value
	}
	return mat.NewVecDense(rows, out), nil
}

func TestPairScoresKeysAndOrder(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{2, 2, 2})

	entries, err := PairScores(
		constantModel{value: 2}, constantModel{value: 0},
		X, y, X, y, "rand", X, y,
	)
	if err != nil {
		t.Fatalf("PairScores failed: %v", err)
	}

	wantKeys := []string{
		"mae_train_smac", "mae_train_rand", "mae_test_smac", "mae_test_rand",
		"mse_train_smac", "mse_train_rand", "mse_test_smac", "mse_test_rand",
		"r2_train_smac", "r2_train_rand", "r2_test_smac", "r2_test_rand",
	}
	if len(entries) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKeys))
	}
	for i, want := range wantKeys {
		if entries[i].Key != want {
			t.Errorf("entries[%d].Key = %q, want %q", i, entries[i].Key, want)
		}
	}

	byKey := map[string]float64{}
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}
	if byKey["mae_train_smac"] != 0 {
		t.Errorf("primary model should be exact, mae = %v", byKey["mae_train_smac"])
	}
	if byKey["mae_train_rand"] != 2 {
		t.Errorf("comparison mae = %v, want 2", byKey["mae_train_rand"])
	}
}
