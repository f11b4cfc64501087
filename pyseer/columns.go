package pyseer

import "fmt"

// Columns records where the two columns needed for a track live.
type Columns struct {
	Variant    string
	VariantIdx int
	PValue     string
	PValueIdx  int
}

// MinFields is the number of fields a row needs to reach both columns.
func (c Columns) MinFields() int {
	if c.VariantIdx > c.PValueIdx {
		return c.VariantIdx + 1
	}

	return c.PValueIdx + 1
}

// ResolveColumns finds variantCol and the p-value column in header. If pCol is
// empty, the p-value column is auto-detected with DetectPValueColumn.
func ResolveColumns(header []string, variantCol, pCol string) (Columns, error) {
	h := NewHeader(header)
	out := Columns{}

	varIdx, exists := h.Index(variantCol)
	if !exists {
		return out, fmt.Errorf("%w: '%s'. Available columns: %v", ErrMissingVariantColumn, variantCol, header)
	}
	out.Variant = variantCol
	out.VariantIdx = varIdx

	if pCol == "" {
		detected, ok := DetectPValueColumn(header)
		if !ok {
			return out, fmt.Errorf("%w. Specify explicitly with --pcol. Available columns: %v", ErrNoPValueColumn, header)
		}
		pCol = detected
	}

	pIdx, exists := h.Index(pCol)
	if !exists {
		return out, fmt.Errorf("%w: '%s' is not in the header. Available columns: %v", ErrNoPValueColumn, pCol, header)
	}
	out.PValue = pCol
	out.PValueIdx = pIdx

	return out, nil
}
