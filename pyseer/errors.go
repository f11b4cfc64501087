package pyseer

import "errors"

var (
	ErrEmptyTable           = errors.New("input is empty")
	ErrMissingVariantColumn = errors.New("variant column not found")
	ErrNoPValueColumn       = errors.New("could not determine p-value column")
	ErrMissingPositionField = errors.New("missing position field")
	ErrBadPosition          = errors.New("position is not an integer")
	ErrBadPValue            = errors.New("p-value is not numeric")
)
