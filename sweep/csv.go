package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/symgo-ml/symgo/pkg/errors"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteComplexityCSV writes the complexity table: one row per sweep unit.
func WriteComplexityCSV(w io.Writer, records []ComplexityRecord) error {
	cw := csv.NewWriter(w)
	header := []string{
		"parsimony", "n_samples", "sampling_seed", "symb_seed",
		"program_operations", "program_length_before_simplification", "expression",
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing complexity header")
	}
	for _, rec := range records {
		row := []string{
			formatFloat(rec.Parsimony),
			strconv.Itoa(rec.NSamples),
			strconv.Itoa(rec.SamplingSeed),
			strconv.Itoa(rec.SymbSeed),
			strconv.Itoa(rec.ProgramOperations),
			strconv.Itoa(rec.ProgramLengthBeforeSimplification),
			rec.Expression,
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing complexity row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing complexity table")
}

// WriteErrorCSV writes the error-metrics table: one row per sweep unit.
func WriteErrorCSV(w io.Writer, records []ErrorRecord) error {
	cw := csv.NewWriter(w)
	header := []string{
		"parsimony", "n_samples", "sampling_seed", "symb_seed",
		"mae_train", "mae_test", "mse_train", "mse_test", "r2_train", "r2_test",
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing error-metrics header")
	}
	for _, rec := range records {
		row := []string{
			formatFloat(rec.Parsimony),
			strconv.Itoa(rec.NSamples),
			strconv.Itoa(rec.SamplingSeed),
			strconv.Itoa(rec.SymbSeed),
			formatFloat(rec.MAETrain),
			formatFloat(rec.MAETest),
			formatFloat(rec.MSETrain),
			formatFloat(rec.MSETest),
			formatFloat(rec.R2Train),
			formatFloat(rec.R2Test),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "writing error-metrics row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing error-metrics table")
}

// WriteRunConfig persists run parameters as a flat section file:
//
//	[symbolic_regression]
//	key = value
//
// Keys are written in sorted order so runs diff cleanly.
func WriteRunConfig(w io.Writer, section string, params map[string]string) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", section); err != nil {
		return errors.Wrap(err, "writing config section")
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, params[k]); err != nil {
			return errors.Wrap(err, "writing config entry")
		}
	}
	return nil
}
