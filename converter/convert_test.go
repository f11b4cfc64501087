package converter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/carbocation/pyseer2phandango/pyseer"
)

func mustTable(t *testing.T, s string) *pyseer.Table {
	t.Helper()
	tbl, err := pyseer.ReadTable(strings.NewReader(s), "\t")
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestConvertBasic(t *testing.T) {
	tbl := mustTable(t, "variant\tlrt-pvalue\tother\n"+
		"AE017143.1_12345_A_T\t0.01\tx\n"+
		"AE017143.1_678_G_C\t1\ty\n")

	res, err := Convert(tbl, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if res.Columns.PValue != "lrt-pvalue" {
		t.Errorf("Expected lrt-pvalue to be detected, got %s", res.Columns.PValue)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(res.Rows))
	}

	r := res.Rows[0]
	if r.Chromosome != "26" || r.SNP != "." || r.BP != 12345 || r.MinLog10P != 2 || r.Log10P != 2 || r.R2 != "0" {
		t.Errorf("Unexpected row: %+v", r)
	}
	if res.Rows[1].BP != 678 || res.Rows[1].MinLog10P != 0 {
		t.Errorf("Unexpected row: %+v", res.Rows[1])
	}
}

func TestConvertRowCount(t *testing.T) {
	tbl := mustTable(t, "variant\tbeta\tpvalue\n"+
		"c_1_A_T\t0.1\t0.5\n"+
		"c_2_A_T\t0.1\n"+ // short
		"c_3_A_T\t0.1\t0.25\n"+
		"c\t0.1\t0.1\n"+ // no BP field
		"c_x_A_T\t0.1\t0.1\n"+ // non-integer BP
		"c_6_A_T\t0.1\tNA\n"+ // non-numeric p
		"c_7_A_T\t0.1\t0\n") // non-positive p

	cfg := DefaultConfig()
	cfg.AllowMissingBP = true
	cfg.SkipNonPositiveP = true

	res, err := Convert(tbl, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if res.Short != 1 || res.BadBP != 2 || res.BadP != 2 {
		t.Errorf("Unexpected counters: short=%d badBP=%d badP=%d", res.Short, res.BadBP, res.BadP)
	}
	if want := len(tbl.Rows) - res.Short - res.BadBP - res.BadP; len(res.Rows) != want {
		t.Errorf("Expected %d rows, got %d", want, len(res.Rows))
	}
	if len(res.PValues) != len(res.Rows) {
		t.Errorf("Expected one p-value per row, got %d for %d rows", len(res.PValues), len(res.Rows))
	}
	if res.Rows[0].BP != 1 || res.Rows[1].BP != 3 {
		t.Errorf("Unexpected positions: %d, %d", res.Rows[0].BP, res.Rows[1].BP)
	}
}

func TestConvertNonPositivePIsInf(t *testing.T) {
	tbl := mustTable(t, "variant\tpvalue\nc_10_A_T\t0\nc_11_A_T\t-1e-5\n")

	res, err := Convert(tbl, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 2 || res.BadP != 2 {
		t.Fatalf("Expected 2 rows and 2 counted p-values, got %d and %d", len(res.Rows), res.BadP)
	}
	for _, r := range res.Rows {
		if !math.IsInf(r.MinLog10P, 1) || !math.IsInf(r.Log10P, 1) {
			t.Errorf("Expected inf, got %+v", r)
		}
	}
}

func TestConvertStrictFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing BP field", "variant\tpvalue\nAE017143.1\t0.1\n", pyseer.ErrMissingPositionField},
		{"bad BP", "variant\tpvalue\nc_abc_A_T\t0.1\n", pyseer.ErrBadPosition},
		{"bad p", "variant\tpvalue\nc_1_A_T\tNA\n", pyseer.ErrBadPValue},
		{"missing variant column", "kmer\tpvalue\nACGT\t0.1\n", pyseer.ErrMissingVariantColumn},
		{"no p-value column", "variant\tbeta\nc_1_A_T\t0.1\n", pyseer.ErrNoPValueColumn},
	}

	for _, tt := range tests {
		_, err := Convert(mustTable(t, tt.input), DefaultConfig())
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestConvertLenientSwitchesAreIndependent(t *testing.T) {
	input := "variant\tpvalue\nc\t0.1\nc_2_A_T\tNA\n"

	cfg := DefaultConfig()
	cfg.AllowMissingBP = true
	if _, err := Convert(mustTable(t, input), cfg); !errors.Is(err, pyseer.ErrBadPValue) {
		t.Errorf("Expected the p-value failure to remain fatal, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.SkipNonPositiveP = true
	if _, err := Convert(mustTable(t, input), cfg); !errors.Is(err, pyseer.ErrMissingPositionField) {
		t.Errorf("Expected the BP failure to remain fatal, got %v", err)
	}
}

func TestConvertCustomLayout(t *testing.T) {
	tbl := mustTable(t, "id\tWald-Pvalue\n1:751756:C:T\t1e-8\n")

	cfg := DefaultConfig()
	cfg.VariantCol = "id"
	cfg.VariantDelim = ":"
	cfg.Chromosome = "1"
	cfg.SNPName = "rs1"
	cfg.R2 = "0.5"

	res, err := Convert(tbl, cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := res.Rows[0]
	if r.Chromosome != "1" || r.SNP != "rs1" || r.BP != 751756 || r.MinLog10P != 8 || r.R2 != "0.5" {
		t.Errorf("Unexpected row: %+v", r)
	}
}

func TestIsDataError(t *testing.T) {
	_, err := Convert(mustTable(t, "variant\tpvalue\nc_1_A_T\tNA\n"), DefaultConfig())
	if !IsDataError(err) {
		t.Errorf("Expected %v to be a data error", err)
	}

	_, err = Convert(mustTable(t, "kmer\tpvalue\n"), DefaultConfig())
	if IsDataError(err) {
		t.Errorf("Did not expect %v to be a data error", err)
	}
}
