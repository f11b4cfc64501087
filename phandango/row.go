package phandango

import (
	"math"
	"strconv"
)

// Map columns in the .plot file to their positions
const (
	Chromosome int = iota
	SNP
	BP
	MinLog10P
	Log10P
	R2
)

// Header is the first line of every .plot track.
const Header = "#CHR\tSNP\tBP\tminLOG10(P)\tlog10(p)\tr^2"

// Row is one variant in a .plot track. Phandango reads both minLOG10(P) and
// log10(p); they normally carry the same -log10(p) value.
type Row struct {
	Chromosome string
	SNP        string
	BP         int
	MinLog10P  float64
	Log10P     float64
	R2         string
}

// Fields renders the row in column order.
func (r Row) Fields() []string {
	out := make([]string, R2+1)
	out[Chromosome] = r.Chromosome
	out[SNP] = r.SNP
	out[BP] = strconv.Itoa(r.BP)
	out[MinLog10P] = FormatFloat(r.MinLog10P)
	out[Log10P] = FormatFloat(r.Log10P)
	out[R2] = r.R2

	return out
}

// FormatFloat renders v with the fewest digits that round-trip. Infinities
// become "inf" and "-inf", and NaN becomes "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NegLog10 returns -log10(p). Any p <= 0 is treated as a probability that
// rounded to zero upstream, and yields +Inf.
func NegLog10(p float64) float64 {
	if p <= 0 {
		return math.Inf(1)
	}

	v := -math.Log10(p)
	if v == 0 {
		// Avoid printing -0 for p == 1
		return 0
	}

	// math.Log10 can land an ulp away from the integer for exact powers of
	// ten, e.g. 1.9999999999999996 for 0.01.
	if r := math.Round(v); r >= 1 && r < float64(len(negPow10)) && negPow10[int(r)] == p {
		return r
	}

	return v
}

// negPow10[k] is the float64 nearest to 10^-k, as a parser would produce
// from "1e-k". 1e-323 is the smallest that does not underflow to zero.
var negPow10 = func() [324]float64 {
	var out [324]float64
	for k := range out {
		out[k], _ = strconv.ParseFloat("1e-"+strconv.Itoa(k), 64)
	}
	return out
}()
