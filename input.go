package pyseer2phandango

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ReadInput loads the whole of path into memory, decompressing it first if it
// carries a known compression signature.
func ReadInput(ctx context.Context, path string, client *storage.Client) ([]byte, DataType, error) {
	f, _, err := OpenSeeker(ctx, path, client)
	if err != nil {
		return nil, DataTypeInvalid, err
	}
	defer f.Close()

	r, dt, err := MaybeDecompress(f)
	if err != nil {
		return nil, dt, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, dt, pfx.Err(err)
	}

	return data, dt, nil
}
