// Package ziputil selects and extracts members of zip containers.
package ziputil

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/xishang0128/xliff-dumper/common/file"
)

// ArchiveError reports a container that cannot be opened or a member that cannot be extracted.
type ArchiveError struct {
	Archive string
	Member  string
	Err     error
}

func (e *ArchiveError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("archive %s: member %s: %v", e.Archive, e.Member, e.Err)
	}
	return fmt.Sprintf("archive %s: %v", e.Archive, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// Archive is an open zip container.
type Archive struct {
	name   string
	reader file.Reader
	zip    *zip.Reader
}

// Open opens the zip container at p (local path or http(s) URL).
func Open(p string) (*Archive, error) {
	r, err := file.Open(p)
	if err != nil {
		return nil, errors.WithStack(&ArchiveError{Archive: p, Err: err})
	}
	a, err := New(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return a, nil
}

// New reads the central directory of r. The Archive takes ownership of r.
func New(r file.Reader) (*Archive, error) {
	zr, err := zip.NewReader(r, r.Size())
	if err != nil {
		return nil, errors.WithStack(&ArchiveError{Archive: r.Name(), Err: err})
	}
	return &Archive{name: r.Name(), reader: r, zip: zr}, nil
}

func (a *Archive) Name() string {
	return a.name
}

func (a *Archive) Close() error {
	return a.reader.Close()
}

// Files returns every member in central directory order.
func (a *Archive) Files() []*zip.File {
	return a.zip.File
}

// Select returns the non-directory members accepted by match, in central directory order.
func (a *Archive) Select(match MatchFunc) []*zip.File {
	var out []*zip.File
	for _, f := range a.zip.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if match(f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// Extract writes f below dir, keeping its internal path. It returns the path
// relative to dir. Members that would land outside dir are rejected.
func (a *Archive) Extract(f *zip.File, dir string) (string, error) {
	rel, err := SafeRelPath(f.Name)
	if err != nil {
		return "", errors.WithStack(&ArchiveError{Archive: a.name, Member: f.Name, Err: err})
	}
	if err := a.write(f, filepath.Join(dir, rel)); err != nil {
		return "", err
	}
	return rel, nil
}

// ExtractFlat writes f directly into dir under its base name.
func (a *Archive) ExtractFlat(f *zip.File, dir string) (string, error) {
	base := path.Base(Normalize(f.Name))
	if base == "." || base == "/" || base == ".." {
		return "", errors.WithStack(&ArchiveError{Archive: a.name, Member: f.Name, Err: errors.New("member has no file name")})
	}
	dest := filepath.Join(dir, base)
	if err := a.write(f, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (a *Archive) write(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.WithStack(err)
	}

	rc, err := f.Open()
	if err != nil {
		return errors.WithStack(&ArchiveError{Archive: a.name, Member: f.Name, Err: err})
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return errors.WithStack(&ArchiveError{Archive: a.name, Member: f.Name, Err: err})
	}
	return errors.WithStack(out.Close())
}

// SafeRelPath converts a member name into an OS path that stays inside the
// extraction directory.
func SafeRelPath(name string) (string, error) {
	n := Normalize(name)
	if strings.HasPrefix(n, "/") || (len(n) > 1 && n[1] == ':') {
		return "", errors.Errorf("absolute member path %q", name)
	}
	clean := path.Clean(n)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.Errorf("member path %q escapes extraction directory", name)
	}
	return filepath.FromSlash(clean), nil
}
