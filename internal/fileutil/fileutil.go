// Package fileutil writes output files safely.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
)

// WriteOptions controls how WriteFile replaces its destination.
type WriteOptions struct {
	// Atomic writes to a temporary sibling and renames it over the destination.
	// Destinations that are not regular files are always written in place.
	Atomic bool
	// Lock holds an advisory lock on "<target>.lock" for the duration of the
	// write. The lock file is left in place.
	Lock bool
	Mode os.FileMode
}

// ErrLocked is returned when another process holds the destination lock.
var ErrLocked = errors.New("output file is locked by another process")

// CheckWritableDir verifies that dir exists and the current user may create
// files in it.
func CheckWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("directory %s is not writable: %w", dir, err)
	}
	return nil
}

// WriteFile overwrites the file named by path with data. Symlinks are
// followed, so the file they point to is written and the link survives.
func WriteFile(path string, data []byte, opts WriteOptions) error {
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}

	target, regular, err := resolveTarget(path)
	if err != nil {
		return err
	}
	if !regular {
		return writeInPlace(target, data, mode)
	}

	if opts.Lock {
		lock := flock.New(target + ".lock")
		ok, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return fmt.Errorf("%s: %w", path, ErrLocked)
		}
		defer func() { _ = lock.Unlock() }()
	}

	if !opts.Atomic {
		return writeInPlace(target, data, mode)
	}
	if err := CheckWritableDir(filepath.Dir(target)); err != nil {
		return err
	}
	return writeAtomic(target, data, mode)
}

// resolveTarget returns the path that should actually be written and whether
// it is (or will be created as) a regular file. A dangling symlink resolves to
// itself and is reported as non-regular so the write follows the link.
func resolveTarget(path string) (string, bool, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, true, nil
	}
	if err != nil {
		return "", false, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return path, info.Mode().IsRegular(), nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, os.ErrNotExist) {
		return path, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err = os.Stat(resolved)
	if err != nil {
		return "", false, err
	}
	return resolved, info.Mode().IsRegular(), nil
}

func writeInPlace(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeAtomic(path string, data []byte, mode os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
