package pyseer2phandango

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// CreateOutput opens path for writing, truncating anything already there.
// For gs:// paths the object is only committed when the returned writer is
// closed, so the error from Close must be checked.
func CreateOutput(ctx context.Context, path string, client *storage.Client) (io.WriteCloser, error) {
	if IsGoogleStoragePath(path) {
		if client == nil {
			return nil, pfx.Err(fmt.Errorf("%s: no google storage client was provided", path))
		}

		bucketName, pathName, err := splitGoogleStoragePath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		w := client.Bucket(bucketName).Object(pathName).NewWriter(ctx)
		w.ContentType = "text/tab-separated-values"

		return w, nil
	}

	f, err := os.OpenFile(ExpandHome(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}
