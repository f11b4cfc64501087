package pyseer2phandango

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
)

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZlib:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}

	return "invalid"
}

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// zlib streams start with 0x78 (deflate, 32K window) followed by one of the
// flag bytes written at the usual compression levels.
var zlibFlags = map[byte]struct{}{0x01: {}, 0x5e: {}, 0x9c: {}, 0xda: {}}

func isZlibHeader(b []byte) bool {
	if len(b) < 2 || b[0] != 0x78 {
		return false
	}
	_, exists := zlibFlags[b[1]]
	return exists
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types. Streams shorter than the longest
// signature are only compared against the bytes that were actually read. Byte
// code signatures from https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return DataTypeInvalid, err
	}
	buff = buff[:n]

	// Match known signatures
Outer:
	for dt, sig := range byteCodeSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	if isZlibHeader(buff) {
		return DataTypeZlib, nil
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompress sniffs the first bytes of rs, rewinds it, and wraps it in
// the matching decompressor. Uncompressed input is returned as-is. Closing the
// returned reader does not close rs.
func MaybeDecompress(rs io.ReadSeeker) (io.ReadCloser, DataType, error) {
	dt, err := DetectDataType(rs)
	if err != nil {
		return nil, dt, pfx.Err(err)
	}

	// Reset the original reader before handing it to a decompressor
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, dt, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		r, err := gzip.NewReader(rs)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		return r, dt, nil
	case DataTypeZip:
		// Only the first member of the archive is read
		zr := zipstream.NewReader(rs)
		if _, err := zr.Next(); err != nil {
			return nil, dt, pfx.Err(err)
		}
		return io.NopCloser(zr), dt, nil
	case DataTypeBZip2:
		return io.NopCloser(bzip2.NewReader(rs)), dt, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(rs, 0)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		return io.NopCloser(reader), dt, nil
	case DataTypeZlib:
		r, err := zlib.NewReader(rs)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		return r, dt, nil
	}

	// No data type detected. For now, we assume this is uncompressed.
	return io.NopCloser(rs), dt, nil
}
