package dif

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sutext.github.io/difio/coder"
	"sutext.github.io/difio/xerr"
	"sutext.github.io/difio/xlog"
)

// Load reads a whole file into v. Any decode failure means the file could not
// be loaded; v must not be used in that case.
func Load(path string, v coder.Decodable, opts ...coder.Option) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := coder.Unmarshal(data, v, opts...); err != nil {
		return fmt.Errorf("%w: %s: %w", xerr.RecordLoadFailed, path, err)
	}
	xlog.Debug("record loaded", xlog.File(path), xlog.Int("bytes", len(data)))
	return nil
}

// ReadFile reads the raw bytes of a record file. A missing file is
// xerr.FileNotFound, any other failure xerr.RecordLoadFailed.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", xerr.FileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", xerr.RecordLoadFailed, path, err)
	}
	return data, nil
}

// Save encodes v and writes it to path. Nothing is written if encoding fails.
func Save(path string, v coder.Encodable, opts ...coder.Option) error {
	data, err := coder.Marshal(v, opts...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", xerr.RecordSaveFailed, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", xerr.RecordSaveFailed, path, err)
	}
	return nil
}

func LoadPathFollower(path string, opts ...coder.Option) (*PathFollower, error) {
	pf := &PathFollower{}
	if err := Load(path, pf, opts...); err != nil {
		return nil, err
	}
	return pf, nil
}
