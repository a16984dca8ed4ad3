package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/spanforest/matrix"
)

// Format names an input encoding.
type Format string

const (
	FormatNPY  Format = "npy"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

var (
	// ErrUnsupportedFormat is returned for an unknown extension or Format.
	ErrUnsupportedFormat = errors.New("matrixio: unsupported format")

	// ErrBadDims indicates a .npy array that is not two-dimensional, or whose
	// shape is negative or too large to load.
	ErrBadDims = errors.New("matrixio: array is not two-dimensional")

	// ErrBadValue indicates a cell that does not parse as a number.
	ErrBadValue = errors.New("matrixio: malformed value")
)

// FormatFromPath maps a file extension (case-insensitive) to a Format.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".npy":
		return FormatNPY, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Read decodes rows from r in the given format.
func Read(r io.Reader, format Format) ([][]float64, error) {
	switch format {
	case FormatNPY:
		return readNPY(r)
	case FormatJSON, FormatYAML:
		return readYAML(r)
	case FormatCSV:
		return readCSV(r)
	case FormatText:
		return readText(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load opens path and decodes it according to its extension.
// Errors are prefixed with the path.
func Load(path string) ([][]float64, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	rows, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// LoadWeighted loads path and validates it with matrix.NewWeighted.
func LoadWeighted(path string, opts ...matrix.Option) (*matrix.Weighted, error) {
	rows, err := Load(path)
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewWeighted(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
