package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pyseer2phandango"
	_ "github.com/carbocation/pyseer2phandango/compileinfoprint"
	"github.com/carbocation/pyseer2phandango/converter"
)

func main() {
	cfg := converter.DefaultConfig()

	flag.StringVar(&cfg.Input, "pyseer", "", "Pyseer output TSV (with header). May be compressed, and may be a google storage URL (gs://).")
	flag.StringVar(&cfg.Output, "out", "", "Output .plot file. May be a google storage URL (gs://).")
	flag.StringVar(&cfg.Chromosome, "chr-index", cfg.Chromosome, "Value to put in #CHR column.")
	flag.StringVar(&cfg.VariantCol, "variant-col", cfg.VariantCol, "Column name containing variant IDs.")
	flag.StringVar(&cfg.PCol, "pcol", "", "P-value column name to use. If not set, will auto-detect from common pyseer columns (lrt-pvalue, pvalue, p-value, wald-pvalue, etc.).")
	flag.StringVar(&cfg.VariantDelim, "variant-delim", cfg.VariantDelim, "Delimiter used in variant IDs.")
	flag.IntVar(&cfg.BPFieldIndex, "bp-field-index", cfg.BPFieldIndex, "0-based index of the field in the split variant ID that contains BP. Example: contig_12345_A_T => BP field is 1.")
	flag.StringVar(&cfg.SNPName, "snp-name", cfg.SNPName, "Value to put in SNP column.")
	flag.StringVar(&cfg.R2, "r2", cfg.R2, "Value to put in r^2 column.")
	flag.BoolVar(&cfg.SkipNonPositiveP, "skip-nonpositive-p", false, "Skip rows with p<=0 or non-numeric p instead of erroring.")
	flag.BoolVar(&cfg.AllowMissingBP, "allow-missing-bp", false, "Skip rows where BP cannot be parsed (default: error).")
	flag.StringVar(&cfg.InputDelim, "input-delim", cfg.InputDelim, "Field delimiter of the pyseer file. Use 'auto' to detect it.")
	flag.Parse()

	if cfg.Input == "" || cfg.Output == "" {
		fmt.Fprintln(os.Stderr, "Convert pyseer output to a Phandango .plot track.")
		flag.PrintDefaults()
		log.Fatalln("Must specify both --pyseer and --out")
	}

	var client *storage.Client
	if pyseer2phandango.IsGoogleStoragePath(cfg.Input) ||
		pyseer2phandango.IsGoogleStoragePath(cfg.Output) {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	if _, err := converter.Run(context.Background(), cfg, client); err != nil {
		if converter.IsDataError(err) {
			log.Println("[ERROR] Rows like this can be skipped with --allow-missing-bp or --skip-nonpositive-p")
		}
		log.Fatalln("[ERROR]", err)
	}
}
