package montecarlo

import (
	"strconv"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// fieldAgg accumulates one field's observed values. A field starts out both
// numeric and categorical; the first value that breaks either classification
// disables it for the rest of the run, which is how heterogeneous fields end
// up with no derived statistics.
type fieldAgg struct {
	numeric     bool
	categorical bool
	values      []float64
	counts      map[string]int
}

func newFieldAgg() *fieldAgg {
	return &fieldAgg{
		numeric:     true,
		categorical: true,
		counts:      make(map[string]int),
	}
}

func (f *fieldAgg) add(value any) {
	num, isNumeric := asFloat(value)

	if f.numeric {
		if isNumeric {
			f.values = append(f.values, num)
		} else {
			f.numeric = false
			f.values = nil
		}
	}

	if f.categorical {
		if key, ok := displayKey(value); ok {
			f.counts[key]++
		} else {
			f.categorical = false
			f.counts = nil
		}
	}
}

func (f *fieldAgg) merge(other *fieldAgg) {
	if !other.numeric {
		f.numeric = false
		f.values = nil
	} else if f.numeric {
		f.values = append(f.values, other.values...)
	}

	if !other.categorical {
		f.categorical = false
		f.counts = nil
	} else if f.categorical {
		for key, n := range other.counts {
			f.counts[key] += n
		}
	}
}

// collector reduces trial records field by field. All of its statistics are
// sums and counts, so the reduction is independent of trial order.
type collector struct {
	fields map[string]*fieldAgg
}

func newCollector() *collector {
	return &collector{fields: make(map[string]*fieldAgg)}
}

func (c *collector) add(result Result) {
	for key, value := range result {
		agg, ok := c.fields[key]
		if !ok {
			agg = newFieldAgg()
			c.fields[key] = agg
		}
		agg.add(value)
	}
}

func (c *collector) merge(other *collector) {
	for key, agg := range other.fields {
		existing, ok := c.fields[key]
		if !ok {
			c.fields[key] = agg
			continue
		}
		existing.merge(agg)
	}
}

func (c *collector) report(iterations int, elapsed time.Duration) *Report {
	rep := &Report{
		TotalIterations: iterations,
		TotalTime:       elapsed,
		Numeric:         make(map[string]NumericStats),
		Counts:          make(map[string]map[string]int),
		Percentages:     make(map[string]map[string]float64),
	}

	for key, agg := range c.fields {
		if agg.numeric && len(agg.values) > 0 {
			rep.Numeric[key] = NumericStats{
				Count: len(agg.values),
				Total: floats.Sum(agg.values),
				Mean:  stat.Mean(agg.values, nil),
				Min:   floats.Min(agg.values),
				Max:   floats.Max(agg.values),
			}
		}
		if agg.categorical && len(agg.counts) > 0 {
			counts := make(map[string]int, len(agg.counts))
			pcts := make(map[string]float64, len(agg.counts))
			for value, n := range agg.counts {
				counts[value] = n
				pcts[value] = float64(n) / float64(iterations) * 100
			}
			rep.Counts[key] = counts
			rep.Percentages[key] = pcts
		}
	}

	return rep
}

// asFloat classifies a value as numeric and converts it. Bools are
// categorical, not numeric.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// displayKey renders a categorical-compatible value (numeric, bool, or
// string) as a count key. Structured values are not categorical.
func displayKey(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	if num, ok := asFloat(value); ok {
		return strconv.FormatInt(int64(num), 10), true
	}
	return "", false
}
