package montecarlo

import "time"

// NumericStats holds the derived statistics for a uniformly numeric field.
type NumericStats struct {
	Count int
	Total float64
	Mean  float64
	Min   float64
	Max   float64
}

// Report is the aggregate output of one run. It is owned by that run and
// replaced wholesale by the next one.
type Report struct {
	TotalIterations int
	TotalTime       time.Duration

	// Numeric has an entry per field whose observed values were all numeric.
	Numeric map[string]NumericStats
	// Counts / Percentages have an entry per field whose observed values
	// were all categorical-compatible (numeric, bool, or string), keyed by
	// the value's display string. Percentages are relative to
	// TotalIterations.
	Counts      map[string]map[string]int
	Percentages map[string]map[string]float64
}

// IterationsPerSecond returns the run's trial throughput.
func (r *Report) IterationsPerSecond() float64 {
	secs := r.TotalTime.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.TotalIterations) / secs
}

// Flatten renders the report as a flat mapping with systematically derived
// keys (<field>_total, <field>_mean, <field>_min, <field>_max,
// <field>_counts, <field>_percentages) plus the fixed run keys. The shape is
// suitable for direct textual reporting.
func (r *Report) Flatten() map[string]any {
	out := make(map[string]any, 4*len(r.Numeric)+2*len(r.Counts)+3)
	for field, stats := range r.Numeric {
		out[field+"_total"] = stats.Total
		out[field+"_mean"] = stats.Mean
		out[field+"_min"] = stats.Min
		out[field+"_max"] = stats.Max
	}
	for field, counts := range r.Counts {
		out[field+"_counts"] = counts
	}
	for field, pcts := range r.Percentages {
		out[field+"_percentages"] = pcts
	}
	out["total_iterations"] = r.TotalIterations
	out["total_time_seconds"] = r.TotalTime.Seconds()
	out["iterations_per_second"] = r.IterationsPerSecond()
	return out
}
