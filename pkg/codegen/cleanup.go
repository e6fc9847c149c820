package codegen

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rancher/wrangler/v3/pkg/cleanup"
	"github.com/sirupsen/logrus"
)

const generatedHeader = "// Code generated by codegen. DO NOT EDIT."

var ErrHandWritten = errors.New("file carries the generated prefix but was not generated")

// Cleanup deletes the generated files below dir and returns their paths. Nothing is
// removed when a zz_generated file lacks the generated header.
func Cleanup(dir string) ([]string, error) {
	files, err := generatedFiles(dir)
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		logrus.Debugf("removing %s", path)
	}
	if err := cleanup.Cleanup(dir); err != nil {
		return nil, errors.Wrapf(err, "failed to clean %s", dir)
	}
	return files, nil
}

// generatedFiles lists what cleanup.Cleanup is about to remove, skipping vendor the
// same way it does.
func generatedFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasPrefix(d.Name(), "zz_generated") {
			return nil
		}
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if !generated {
			return errors.Wrap(ErrHandWritten, path)
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return scanner.Text() == generatedHeader, nil
}
