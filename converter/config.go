package converter

import (
	"errors"
	"fmt"
)

// AutoDelimiter asks the converter to detect the input field delimiter.
const AutoDelimiter = "auto"

type Config struct {
	// Input and Output are local paths or gs:// URLs. Input may be
	// compressed.
	Input  string
	Output string

	// InputDelim separates fields in the input table. AutoDelimiter detects
	// it from the data.
	InputDelim string

	Chromosome string
	VariantCol string

	// PCol names the p-value column. If empty, it is auto-detected.
	PCol string

	VariantDelim string
	BPFieldIndex int

	SNPName string
	R2      string

	// SkipNonPositiveP drops rows whose p-value is non-numeric or <= 0.
	// Without it, non-numeric p-values abort the run and p <= 0 becomes inf.
	SkipNonPositiveP bool

	// AllowMissingBP drops rows whose position cannot be parsed instead of
	// aborting the run.
	AllowMissingBP bool
}

func DefaultConfig() Config {
	return Config{
		InputDelim:   "\t",
		Chromosome:   "26",
		VariantCol:   "variant",
		VariantDelim: "_",
		BPFieldIndex: 1,
		SNPName:      ".",
		R2:           "0",
	}
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("an input path is required")
	}
	if c.Output == "" {
		return errors.New("an output path is required")
	}
	if c.InputDelim == "" {
		return errors.New("the input delimiter cannot be empty")
	}
	if c.VariantDelim == "" {
		return fmt.Errorf("the variant delimiter cannot be empty")
	}

	return nil
}
