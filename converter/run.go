package converter

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/pyseer2phandango"
	"github.com/carbocation/pyseer2phandango/gwasstats"
	"github.com/carbocation/pyseer2phandango/phandango"
	"github.com/carbocation/pyseer2phandango/pyseer"
)

// Run reads cfg.Input, converts it, and writes the track to cfg.Output. The
// output is only created once every row has been converted, so a failed run
// leaves nothing behind. client may be nil when no gs:// paths are involved.
func Run(ctx context.Context, cfg Config, client *storage.Client) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, dt, err := pyseer2phandango.ReadInput(ctx, cfg.Input, client)
	if err != nil {
		return nil, err
	}
	if dt != pyseer2phandango.DataTypeNoCompression {
		log.Printf("[INFO] Reading %s as %s\n", cfg.Input, dt)
	}

	delim := cfg.InputDelim
	if delim == AutoDelimiter {
		delim = string(pyseer2phandango.DetermineDelimiter(bytes.NewReader(data)))
		log.Printf("[INFO] Detected delimiter %q in %s\n", delim, cfg.Input)
	}

	table, err := pyseer.ReadTable(bytes.NewReader(data), delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	res, err := Convert(table, cfg)
	if err != nil {
		return nil, err
	}

	if err := writeTrack(ctx, cfg.Output, client, res.Rows); err != nil {
		return res, err
	}

	LogSummary(res, cfg)

	return res, nil
}

func writeTrack(ctx context.Context, path string, client *storage.Client, rows []phandango.Row) error {
	out, err := pyseer2phandango.CreateOutput(ctx, path, client)
	if err != nil {
		return err
	}

	if err := phandango.NewWriter(out).WriteAll(rows); err != nil {
		out.Close()
		return pfx.Err(err)
	}

	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// LogSummary reports what was written and what was skipped.
func LogSummary(res *Result, cfg Config) {
	log.Printf("[INFO] Wrote %d variants to %s (pcol='%s', variant_col='%s').\n", len(res.Rows), cfg.Output, res.Columns.PValue, res.Columns.Variant)
	if res.BadBP > 0 {
		log.Printf("[WARN] Skipped/failed BP parsing for %d rows.\n", res.BadBP)
	}
	if res.BadP > 0 {
		log.Printf("[WARN] Encountered non-positive/non-numeric p for %d rows.\n", res.BadP)
	}
	if res.Short > 0 {
		log.Printf("[INFO] Ignored %d rows with fewer than %d fields.\n", res.Short, res.Columns.MinFields())
	}

	s := gwasstats.Summarize(res.PValues)
	if s.N > 0 {
		log.Printf("[INFO] Genomic inflation lambda_GC=%.4f over %d p-values; top -log10(p)=%s.\n", s.LambdaGC, s.N, phandango.FormatFloat(s.MaxNegLog10P))
	}
}
