package file

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultChunkSize is used when DownloadOptions.ChunkSize is not positive.
const DefaultChunkSize = 8192

// DownloadProgress receives the bytes written so far and the expected total (-1 if unknown).
type DownloadProgress func(written, total int64)

// DownloadOptions tune Download.
type DownloadOptions struct {
	ChunkSize int
	Progress  DownloadProgress
}

// DownloadName derives the local container name from the last URL path segment, e.g. "se.zip".
func DownloadName(rawURL string) string {
	name := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		name = u.Path
	}
	name = path.Base(name)
	if name == "." || name == "/" || name == "" {
		name = "download"
	}
	return name + ".zip"
}

// Download streams rawURL into dest. A non-success status fails immediately with a
// *StatusError and nothing is retried. On failure the partial file is removed.
func Download(ctx context.Context, rawURL, dest string, opts DownloadOptions) (err error) {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	req, err := newRequestContext(ctx, http.MethodGet, rawURL)
	if err != nil {
		return err
	}
	resp, err := client().Do(req)
	if err != nil {
		return errors.Wrapf(err, "download %s", rawURL)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, rawURL); err != nil {
		return err
	}

	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WithStack(err)
		}
	}
	out, err := os.Create(dest)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
		if err != nil {
			os.Remove(dest)
		}
	}()

	total := resp.ContentLength
	var written int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return errors.Wrapf(werr, "write %s", dest)
			}
			written += int64(n)
			if opts.Progress != nil {
				opts.Progress(written, total)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.Wrapf(rerr, "download %s", rawURL)
		}
	}
	return nil
}
