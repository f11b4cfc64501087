// Package gwasstats summarizes the p-values of a genome-wide association scan.
package gwasstats

import (
	"math"

	"github.com/carbocation/pyseer2phandango/phandango"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquaredMedian is the median of the chi-squared distribution with one
// degree of freedom.
const ChiSquaredMedian = 0.4549364231195728

type Summary struct {
	// N is the number of p-values in (0, 1] that were summarized.
	N int

	// LambdaGC is the genomic control inflation factor. NaN when N is 0.
	LambdaGC float64

	// MinP is the smallest usable p-value and MaxNegLog10P its -log10.
	MinP         float64
	MaxNegLog10P float64
}

// ChiSquared converts a two-sided p-value to its 1-df chi-squared statistic.
// Going through the normal quantile keeps precision for very small p, where
// 1-p rounds to 1.
func ChiSquared(p float64) float64 {
	z := distuv.UnitNormal.Quantile(p / 2)
	return z * z
}

// Summarize computes the inflation factor and the top hit over pvalues.
// Values outside (0, 1] and NaN are ignored.
func Summarize(pvalues []float64) Summary {
	out := Summary{
		LambdaGC:     math.NaN(),
		MinP:         math.NaN(),
		MaxNegLog10P: math.NaN(),
	}

	chisq := make(stats.Float64Data, 0, len(pvalues))
	usable := make(stats.Float64Data, 0, len(pvalues))
	for _, p := range pvalues {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			continue
		}
		usable = append(usable, p)
		chisq = append(chisq, ChiSquared(p))
	}

	out.N = len(usable)
	if out.N == 0 {
		return out
	}

	median, err := chisq.Median()
	if err == nil {
		out.LambdaGC = median / ChiSquaredMedian
	}

	minP, err := usable.Min()
	if err == nil {
		out.MinP = minP
		out.MaxNegLog10P = phandango.NegLog10(minP)
	}

	return out
}
