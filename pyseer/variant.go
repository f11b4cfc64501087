package pyseer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Variant is a compound identifier whose fields are joined by a delimiter,
// typically contig, position and alleles: "AE017143.1_12345_A_T".
type Variant string

// Field returns the field at index after splitting on delim. A negative index
// counts back from the last field.
func (v Variant) Field(delim string, index int) (string, error) {
	fields := strings.Split(string(v), delim)

	i := index
	if i < 0 {
		i += len(fields)
	}
	if i < 0 || i >= len(fields) {
		return "", fmt.Errorf("%w: variant '%s' does not have field index %d when split by '%s'", ErrMissingPositionField, v, index, delim)
	}

	return fields[i], nil
}

// Position parses the base-pair position held in the field at index.
func (v Variant) Position(delim string, index int) (int, error) {
	field, err := v.Field(delim, index)
	if err != nil {
		return 0, err
	}

	bp, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: field '%s' parsed from variant '%s'", ErrBadPosition, field, v)
	}

	return bp, nil
}

// ParsePValue parses a p-value cell. Non-positive values parse successfully;
// deciding what to do with them is left to the caller. Out-of-range values
// saturate instead of failing. Hexadecimal floats are rejected.
func ParsePValue(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if isHexFloat(trimmed) {
		return 0, fmt.Errorf("%w: '%s'", ErrBadPValue, s)
	}

	p, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return p, nil
	} else if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrBadPValue, s)
	}

	return p, nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
