package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
)

// WriteErrorKind classifies why a dataset could not be saved.
type WriteErrorKind int

const (
	KindUnexpected WriteErrorKind = iota
	KindInvalidPath
	KindPermission
)

func (k WriteErrorKind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid_path"
	case KindPermission:
		return "permission_denied"
	default:
		return "unexpected"
	}
}

// WriteError reports a failed Save along with the path it targeted.
type WriteError struct {
	Kind WriteErrorKind
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save dataset to %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Message is the human-readable line shown to CLI users.
func (e *WriteError) Message() string {
	switch e.Kind {
	case KindInvalidPath:
		return fmt.Sprintf("Error: the file path '%s' is invalid or inaccessible.", e.Path)
	case KindPermission:
		return fmt.Sprintf("Error: permission denied when attempting to save to '%s'.", e.Path)
	default:
		return fmt.Sprintf("An unexpected error occurred while saving the dataset to '%s'. Error: %v.", e.Path, e.Err)
	}
}

// Writer serializes orders to CSV files.
type Writer struct {
	log *zap.Logger
}

func NewWriter(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log}
}

// Save writes orders to path, creating missing parent directories, and
// returns the absolute path written. Failures are logged and returned as
// *WriteError.
func (w *Writer) Save(orders []Order, path string) (string, error) {
	resolved, err := w.save(orders, path)
	if err != nil {
		var werr *WriteError
		if !errors.As(err, &werr) {
			werr = &WriteError{Kind: KindUnexpected, Path: path, Err: err}
		}
		w.log.Error(werr.Message(), zap.String("kind", werr.Kind.String()), zap.Error(werr.Err))
		return "", werr
	}
	w.log.Info("dataset saved", zap.String("path", resolved), zap.Int("rows", len(orders)))
	return resolved, nil
}

func (w *Writer) save(orders []Order, path string) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", newWriteError(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", newWriteError(resolved, err)
	}

	f, err := os.Create(resolved)
	if err != nil {
		return "", newWriteError(resolved, err)
	}

	if err := writeCSV(f, orders); err != nil {
		f.Close()
		return "", newWriteError(resolved, err)
	}
	if err := f.Close(); err != nil {
		return "", newWriteError(resolved, err)
	}
	return resolved, nil
}

func writeCSV(f *os.File, orders []Order) error {
	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, order := range orders {
		if err := cw.Write(order.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newWriteError(path string, err error) *WriteError {
	return &WriteError{Kind: classifyWriteError(err), Path: path, Err: err}
}

func classifyWriteError(err error) WriteErrorKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.EISDIR),
		errors.Is(err, syscall.ENAMETOOLONG):
		return KindInvalidPath
	default:
		return KindUnexpected
	}
}
