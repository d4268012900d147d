package artstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StoreBatch writes each upload into dir under its base filename, creating
// dir if absent. A same-named existing file is overwritten; no size, type or
// duplicate-name validation is applied — last write wins.
func StoreBatch(dir string, uploads []Upload) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newError(CodeStorage, fmt.Errorf("create media dir: %w", err))
	}
	for _, u := range uploads {
		if err := storeOne(dir, u); err != nil {
			return err
		}
	}
	return nil
}

func storeOne(dir string, u Upload) error {
	name := filepath.Base(u.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return Newf(CodeInvalidInput, "invalid upload filename %q", u.Name)
	}
	src, err := u.Open()
	if err != nil {
		return newError(CodeStorage, fmt.Errorf("open upload %s: %w", name, err))
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return newError(CodeStorage, fmt.Errorf("create %s: %w", name, err))
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return newError(CodeStorage, fmt.Errorf("write %s: %w", name, err))
	}
	if err := dst.Close(); err != nil {
		return newError(CodeStorage, fmt.Errorf("close %s: %w", name, err))
	}
	return nil
}

// ReplaceAll removes dir recursively (a no-op when absent), recreates it
// empty and stores the uploads. This is the sole update semantic for a flat
// media collection: every image-bearing update replaces the whole set.
func ReplaceAll(dir string, uploads []Upload) error {
	if err := os.RemoveAll(dir); err != nil {
		return newError(CodeStorage, fmt.Errorf("clear media dir: %w", err))
	}
	return StoreBatch(dir, uploads)
}
