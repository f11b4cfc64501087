package pyseer2phandango

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assoc.txt.gz")
	if err := os.WriteFile(path, gzipBytes(t, smallTable), 0644); err != nil {
		t.Fatal(err)
	}

	data, dt, err := ReadInput(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeGzip {
		t.Errorf("Expected gzip, got %s", dt)
	}
	if string(data) != smallTable {
		t.Errorf("Expected %q, got %q", smallTable, data)
	}
}

func TestReadInputMissing(t *testing.T) {
	_, _, err := ReadInput(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestGoogleStorageWithoutClient(t *testing.T) {
	if _, _, err := OpenSeeker(context.Background(), "gs://bucket/assoc.txt", nil); err == nil {
		t.Error("Expected an error when no storage client is available")
	}
	if _, err := CreateOutput(context.Background(), "gs://bucket/assoc.plot", nil); err == nil {
		t.Error("Expected an error when no storage client is available")
	}
}

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := splitGoogleStoragePath("gs://my-bucket/gwas/assoc.txt")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || object != "gwas/assoc.txt" {
		t.Errorf("Unexpected split: %s, %s", bucket, object)
	}

	for _, bad := range []string{"gs://my-bucket", "gs:///assoc.txt", "gs://my-bucket/"} {
		if _, _, err := splitGoogleStoragePath(bad); err == nil {
			t.Errorf("Expected %s to fail", bad)
		}
	}
}

func TestCreateOutputTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.plot")
	if err := os.WriteFile(path, []byte("stale contents that are long\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := CreateOutput(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, "new\n"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("Expected truncated file, got %q", got)
	}
}
