package codegen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var ErrStale = errors.New("generated code is out of date")

type Options struct {
	// Dir is the API package directory.
	Dir string
	// Verify compares the rendered files with the ones on disk instead of writing them.
	Verify bool
}

// Run parses the package in opts.Dir and writes its generated files next to the sources.
func Run(ctx context.Context, opts Options) error {
	pkg, err := Parse(opts.Dir)
	if err != nil {
		return err
	}
	for _, w := range pkg.Warnings {
		logrus.Warn(w)
	}
	logrus.Infof("parsed package %s: %d records, %d enums", pkg.Name, len(pkg.Records), len(pkg.Enums))

	files, err := Generate(pkg)
	if err != nil {
		return err
	}
	if opts.Verify {
		return verify(opts.Dir, files)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, f.Name)
			logrus.Debugf("writing %s", path)
			return errors.Wrapf(os.WriteFile(path, f.Content, 0644), "failed to write %s", path)
		})
	}
	return eg.Wait()
}

func verify(dir string, files []File) error {
	var errs error
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		current, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "failed to read %s", path))
			continue
		}
		if !bytes.Equal(current, f.Content) {
			errs = multierr.Append(errs, errors.Wrapf(ErrStale, "%s", path))
		}
	}
	return errs
}
