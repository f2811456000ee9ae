package pipeline

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/xishang0128/xliff-dumper/aggregator"
)

// export copies the written dictionaries to dir so they survive cleanup.
func export(outputs []aggregator.Output, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	var exported []string
	for _, o := range outputs {
		dest := filepath.Join(dir, filepath.Base(o.Path))
		if err := copyFile(o.Path, dest); err != nil {
			return exported, err
		}
		exported = append(exported, dest)
	}
	return exported, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copy %s", src)
	}
	return errors.WithStack(out.Close())
}
