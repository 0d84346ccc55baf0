package dataset

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/JCGoran/data-morph/pkg/errors"
)

// SummaryStatistics holds the descriptive statistics the morph engine
// preserves, each already rounded to the precision they were computed
// at. Two datasets are statistically equivalent at that precision iff
// their SummaryStatistics compare equal field by field.
type SummaryStatistics struct {
	MeanX       float64
	MeanY       float64
	StdX        float64
	StdY        float64
	Correlation float64
}

// Equal reports component-wise equality of already-rounded statistics.
func (s SummaryStatistics) Equal(other SummaryStatistics) bool {
	return s == other
}

// String formats the statistics for display.
func (s SummaryStatistics) String() string {
	return fmt.Sprintf("x̄=%v ȳ=%v σx=%v σy=%v r=%v", s.MeanX, s.MeanY, s.StdX, s.StdY, s.Correlation)
}

// Describe computes the summary statistics of d rounded to the given
// number of decimals. It is a pure function of the point values and
// recomputes from scratch on every call; statistics are never
// maintained incrementally, so no floating-point drift accumulates
// across iterations. Fails if the dataset has fewer than 2 points.
func Describe(d *Dataset, decimals int) (SummaryStatistics, error) {
	if d.Len() < 2 {
		return SummaryStatistics{}, errors.New(errors.ErrCodeDatasetTooSmall,
			"dataset %q has %d points, need at least 2", d.Name, d.Len())
	}

	xs := make(stats.Float64Data, d.Len())
	ys := make(stats.Float64Data, d.Len())
	for i, p := range d.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var (
		summary SummaryStatistics
		err     error
	)
	for _, c := range []struct {
		dst     *float64
		compute func() (float64, error)
	}{
		{&summary.MeanX, func() (float64, error) { return stats.Mean(xs) }},
		{&summary.MeanY, func() (float64, error) { return stats.Mean(ys) }},
		{&summary.StdX, func() (float64, error) { return stats.StandardDeviationSample(xs) }},
		{&summary.StdY, func() (float64, error) { return stats.StandardDeviationSample(ys) }},
		{&summary.Correlation, func() (float64, error) { return stats.Pearson(xs, ys) }},
	} {
		if *c.dst, err = c.compute(); err != nil {
			return SummaryStatistics{}, errors.Wrap(errors.ErrCodeInternal, err, "describe %q", d.Name)
		}
		if *c.dst, err = stats.Round(*c.dst, decimals); err != nil {
			return SummaryStatistics{}, errors.Wrap(errors.ErrCodeInternal, err, "round statistics of %q", d.Name)
		}
	}
	return summary, nil
}
