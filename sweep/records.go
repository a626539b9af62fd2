package sweep

// Unit identifies one independent experiment unit: a sample size paired
// with a sampling seed and a symbolic-regression seed. Units share no state
// and may run in any order.
type Unit struct {
	NSamples     int
	SamplingSeed int
	SymbSeed     int
}

// ComplexityRecord captures the complexity metrics of one fitted model.
// ProgramOperations is -1 when the conversion was degraded or failed;
// aggregation excludes such records from means. Records are derived once
// per unit and never mutated.
type ComplexityRecord struct {
	Parsimony                         float64
	NSamples                          int
	SamplingSeed                      int
	SymbSeed                          int
	ProgramOperations                 int
	ProgramLengthBeforeSimplification int
	Expression                        string
}

// ErrorRecord captures the accuracy metrics of one fitted model on its
// training set and the held-out test set.
type ErrorRecord struct {
	Parsimony    float64
	NSamples     int
	SamplingSeed int
	SymbSeed     int
	MAETrain     float64
	MAETest      float64
	MSETrain     float64
	MSETest      float64
	R2Train      float64
	R2Test       float64
}
