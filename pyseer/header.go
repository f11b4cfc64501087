package pyseer

import "strings"

// Header maps a column name to its 0-based position. When a name appears more
// than once, the last occurrence wins.
type Header map[string]int

func NewHeader(fields []string) Header {
	h := make(Header, len(fields))
	for i, name := range fields {
		h[name] = i
	}

	return h
}

func (h Header) Index(name string) (int, bool) {
	i, exists := h[name]
	return i, exists
}

// PValueCandidates are the p-value columns pyseer can emit, in the order they
// are preferred during auto-detection. The LRT p-value is reported by the
// default fixed-effects model and --lmm, so it comes first.
var PValueCandidates = []string{
	"lrt-pvalue",
	"pvalue",
	"p-value",
	"pval",
	"wald-pvalue",
	"score-pvalue",
	"filter-pvalue",
}

// DetectPValueColumn returns the most likely p-value column among fields.
// Candidates are matched case-insensitively; if none is present, the first
// column whose lower-cased name contains "pvalue" or equals "p" or "pval" is
// used.
func DetectPValueColumn(fields []string) (string, bool) {
	lower := make(map[string]string, len(fields))
	for _, name := range fields {
		lower[strings.ToLower(name)] = name
	}

	for _, c := range PValueCandidates {
		if name, exists := lower[c]; exists {
			return name, true
		}
	}

	for _, name := range fields {
		l := strings.ToLower(name)
		if strings.Contains(l, "pvalue") || l == "p" || l == "pval" {
			return name, true
		}
	}

	return "", false
}
