package converter

import (
	"errors"
	"fmt"

	"github.com/carbocation/pyseer2phandango/phandango"
	"github.com/carbocation/pyseer2phandango/pyseer"
)

// Result holds the converted track and the bookkeeping needed to report on it.
type Result struct {
	Columns pyseer.Columns
	Rows    []phandango.Row

	// PValues holds the parsed p-value behind each emitted row, in order.
	PValues []float64

	// Short counts rows with too few fields to reach both columns.
	Short int

	// BadBP counts rows whose position could not be parsed. BadP counts rows
	// whose p-value was non-numeric or <= 0, whether or not they were kept.
	BadBP int
	BadP  int
}

// Convert maps every row of t onto a track row. It fails before touching any
// row if either column cannot be resolved.
func Convert(t *pyseer.Table, cfg Config) (*Result, error) {
	cols, err := pyseer.ResolveColumns(t.Header, cfg.VariantCol, cfg.PCol)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Columns: cols,
		Rows:    make([]phandango.Row, 0, len(t.Rows)),
		PValues: make([]float64, 0, len(t.Rows)),
	}
	minFields := cols.MinFields()

	for _, parts := range t.Rows {
		if len(parts) < minFields {
			res.Short++
			continue
		}

		variant := pyseer.Variant(parts[cols.VariantIdx])
		pString := parts[cols.PValueIdx]

		bp, err := variant.Position(cfg.VariantDelim, cfg.BPFieldIndex)
		if err != nil {
			res.BadBP++
			if cfg.AllowMissingBP {
				continue
			}
			return nil, err
		}

		p, err := pyseer.ParsePValue(pString)
		if err != nil {
			res.BadP++
			if cfg.SkipNonPositiveP {
				continue
			}
			return nil, fmt.Errorf("%w in column '%s' (variant=%s)", err, cols.PValue, variant)
		}

		if p <= 0 {
			res.BadP++
			if cfg.SkipNonPositiveP {
				continue
			}
			// p == 0 happens when pyseer rounds; NegLog10 turns it into inf.
		}

		neglog := phandango.NegLog10(p)
		res.Rows = append(res.Rows, phandango.Row{
			Chromosome: cfg.Chromosome,
			SNP:        cfg.SNPName,
			BP:         bp,
			MinLog10P:  neglog,
			Log10P:     neglog,
			R2:         cfg.R2,
		})
		res.PValues = append(res.PValues, p)
	}

	return res, nil
}

// IsDataError reports whether err came from a single malformed row, as
// opposed to the table's shape or the environment.
func IsDataError(err error) bool {
	return errors.Is(err, pyseer.ErrMissingPositionField) ||
		errors.Is(err, pyseer.ErrBadPosition) ||
		errors.Is(err, pyseer.ErrBadPValue)
}
