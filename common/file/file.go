// Package file provides access to artifact bundles on disk or behind an HTTP URL.
package file

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reader is a random-access view of a container, enough for archive/zip.
type Reader interface {
	io.ReaderAt
	io.Closer
	Size() int64
	Name() string
}

// IsRemote reports whether p should be opened with NewHTTPFile.
func IsRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Open opens p as a LocalFile or, for http(s) URLs, an HTTPFile.
func Open(p string) (Reader, error) {
	if IsRemote(p) {
		return NewHTTPFile(p)
	}
	return NewLocalFile(p)
}

// LocalFile implements Reader for local files
type LocalFile struct {
	file *os.File
	size int64
}

// NewLocalFile opens a local file for reading.
func NewLocalFile(path string) (*LocalFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.WithStack(err)
	}

	return &LocalFile{
		file: f,
		size: stat.Size(),
	}, nil
}

func (f *LocalFile) ReadAt(p []byte, off int64) (n int, err error) {
	return f.file.ReadAt(p, off)
}

func (f *LocalFile) Close() error {
	return f.file.Close()
}

func (f *LocalFile) Size() int64 {
	return f.size
}

func (f *LocalFile) Name() string {
	return f.file.Name()
}

// HTTPFile implements Reader over HTTP range requests.
type HTTPFile struct {
	url  string
	size int64
}

// NewHTTPFile probes url with a HEAD request.
// The server must support range requests (Accept-Ranges: bytes) and report a length.
func NewHTTPFile(url string) (*HTTPFile, error) {
	req, err := newRequest(http.MethodHead, url)
	if err != nil {
		return nil, err
	}
	resp, err := client().Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, url); err != nil {
		return nil, err
	}

	if resp.Header.Get("Accept-Ranges") != "bytes" {
		return nil, errors.New("remote does not support ranges")
	}

	contentLength := resp.Header.Get("Content-Length")
	if contentLength == "" {
		return nil, errors.New("remote has no length")
	}

	size, err := strconv.ParseInt(contentLength, 10, 64)
	if err != nil {
		return nil, errors.Errorf("invalid content length: %v", err)
	}

	if size == 0 {
		return nil, errors.New("remote has no length")
	}

	return &HTTPFile{
		url:  url,
		size: size,
	}, nil
}

func (f *HTTPFile) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off >= f.size {
		return 0, io.EOF
	}

	endPos := off + int64(len(p)) - 1
	if endPos >= f.size {
		endPos = f.size - 1
	}

	req, err := newRequest(http.MethodGet, f.url)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, endPos))

	resp, err := client().Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent {
		return 0, errors.Errorf("remote did not return partial content: %d", resp.StatusCode)
	}

	n, err := io.ReadFull(resp.Body, p[:endPos-off+1])
	if err != nil && err != io.ErrUnexpectedEOF {
		return n, errors.WithStack(err)
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *HTTPFile) Close() error {
	// HTTP client doesn't need explicit closing for our use case
	return nil
}

func (f *HTTPFile) Size() int64 {
	return f.size
}

func (f *HTTPFile) Name() string {
	return f.url
}
