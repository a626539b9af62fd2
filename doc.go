// Package symgo turns fitted symbolic regression models into readable,
// scored mathematical expressions for explaining hyperparameter
// optimization surrogates.
//
// Symbolic regression produces programs such as add(mul(X0, 0.5), X1).
// SymGo parses them into expression trees, simplifies them, measures
// their complexity and accuracy, and selects the parsimony setting that
// best trades the two off.
//
// # Features
//
// - Expression conversion: parse, simplify and round fitted programs
// - Complexity scoring: operation counts with a degraded-path sentinel
// - Parsimony sweeps: CPU-parallel unit grids with per-unit error policy
// - Elbow selection: pick the knee of the complexity/RMSE front
// - Plots: complexity-versus-RMSE and 1-D fit overlays
//
// # Quick Start
//
// Convert a fitted program into a readable expression:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/symgo-ml/symgo/symb"
//	)
//
//	func main() {
//	    model, err := symb.ParseGeneticProgram("add(mul(X0, 0.5), 0.25)")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    conv, err := symb.Convert(model, 1, 3)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(conv.String())          // x*0.5 + 0.25
//	    fmt.Println(conv.OperationCount())  // 2
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - expr: expression trees, parsing, simplification and evaluation
//   - ops: the protected operator algebra shared by parser and evaluator
//   - symb: fitted-model variants and expression conversion
//   - metrics: regression scores (MAE, MSE, R2) and score tables
//   - sweep: parsimony sweeps, per-unit records and CSV export
//   - pareto: hull extremes and elbow selection
//   - hpo: parameter spaces, sampling, test grids and benchmarks
//   - visualize: sweep and fit plots
package symgo
