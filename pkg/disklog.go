// Package pkg provides shared utilities for verdict.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DiskLog is a gob-backed append-only log for items of type T. It lets the
// run workflow buffer per-test results on disk so large suites do not pin
// every normalized record in memory.
type DiskLog[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(f func(index uint64, item T) error) error
	Close() error
}

type diskLogImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewDiskLog creates a DiskLog backed by a temp file in dir (or the system
// temp dir when dir is empty). The caller owns the file until Close.
func NewDiskLog[T any](dir, pattern string) (DiskLog[T], error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create disk log: %w", err)
	}

	slog.Debug("created disk log", "path", file.Name())

	return &diskLogImpl[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Append implements DiskLog.
func (d *diskLogImpl[T]) Append(item T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", d.path, "index", d.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	d.length++

	return nil
}

// Len implements DiskLog.
func (d *diskLogImpl[T]) Len() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.length
}

// Path implements DiskLog.
func (d *diskLogImpl[T]) Path() string {
	return d.path
}

// Range implements DiskLog. It replays the log in append order, stopping at
// the first error returned by f.
func (d *diskLogImpl[T]) Range(f func(index uint64, item T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	file, err := os.Open(d.path)
	if err != nil {
		slog.Error("failed to open disk log", "path", d.path, "error", err)
		return fmt.Errorf("failed to open disk log: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)

	for index := uint64(0); index < d.length; index++ {
		var item T
		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			slog.Error("failed to decode item", "path", d.path, "index", index, "error", err)

			return fmt.Errorf("failed to decode item %d: %w", index, err)
		}

		if err := f(index, item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements DiskLog. It closes and removes the backing file.
func (d *diskLogImpl[T]) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}

	if err := d.file.Close(); err != nil {
		slog.Error("failed to close disk log", "path", d.path, "error", err)
		return err
	}

	d.file = nil

	if err := os.Remove(d.path); err != nil {
		slog.Warn("failed to remove disk log", "path", d.path, "error", err)
	}

	return nil
}
