package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25,
			tolerance: 1e-10,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
		{
			name:    "mismatched lengths",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("MSE failed: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(2, []float64{0, 0})
	yPred := mat.NewVecDense(2, []float64{3, 4})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	want := math.Sqrt(12.5)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("RMSE = %v, want %v", got, want)
	}
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})
	yPred := mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5})

	got, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE failed: %v", err)
	}
	if math.Abs(got-0.5) > 1e-10 {
		t.Errorf("MAE = %v, want 0.5", got)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{1, 2, 3}),
			want:      1.0,
			tolerance: 1e-12,
		},
		{
			name:      "mean prediction scores zero",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{2, 2, 2}),
			want:      0.0,
			tolerance: 1e-12,
		},
		{
			name:      "constant target perfect",
			yTrue:     mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred:     mat.NewVecDense(3, []float64{5, 5, 5}),
			want:      1.0,
			tolerance: 1e-12,
		},
		{
			name:      "constant target imperfect",
			yTrue:     mat.NewVecDense(3, []float64{5, 5, 5}),
			yPred:     mat.NewVecDense(3, []float64{5, 5, 6}),
			want:      0.0,
			tolerance: 1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if err != nil {
				t.Fatalf("R2Score failed: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("R2Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetScoresIdenticalArrays(t *testing.T) {
	y := mat.NewVecDense(4, []float64{0.1, 0.4, 0.2, 0.9})

	s, err := GetScores(y, y, y, y)
	if err != nil {
		t.Fatalf("GetScores failed: %v", err)
	}
	if s.MAETrain != 0 || s.MAETest != 0 {
		t.Errorf("MAE = %v/%v, want 0/0", s.MAETrain, s.MAETest)
	}
	if s.MSETrain != 0 || s.MSETest != 0 {
		t.Errorf("MSE = %v/%v, want 0/0", s.MSETrain, s.MSETest)
	}
	if s.R2Train != 1 || s.R2Test != 1 {
		t.Errorf("R2 = %v/%v, want 1/1", s.R2Train, s.R2Test)
	}
}
