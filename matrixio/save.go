package matrixio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sbinet/npyio/npy"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Write encodes rows to w in the given format. Rows must be non-empty and
// rectangular for .npy; the text formats write whatever they are given.
func Write(w io.Writer, rows [][]float64, format Format) error {
	switch format {
	case FormatNPY:
		return writeNPY(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(rows)
	case FormatYAML:
		return writeYAML(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatText:
		return writeText(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes rows to path in the format implied by its extension,
// creating or truncating the file.
func Save(path string, rows [][]float64) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("matrixio: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, rows, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return bw.Flush()
}

func writeNPY(w io.Writer, rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("%w: empty matrix", ErrBadDims)
	}
	ncols := len(rows[0])
	flat := make([]float64, 0, len(rows)*ncols)
	for i, row := range rows {
		if len(row) != ncols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadDims, i, len(row), ncols)
		}
		flat = append(flat, row...)
	}

	return npy.Write(w, mat.NewDense(len(rows), ncols, flat))
}

// writeYAML emits one flow-style sequence per row: "- [0, 1, 3]".
func writeYAML(w io.Writer, rows [][]float64) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		rn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rn.Content = append(rn.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(v)})
		}
		doc.Content = append(doc.Content, rn)
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func writeCSV(w io.Writer, rows [][]float64) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = formatFloat(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeText(w io.Writer, rows [][]float64) error {
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = formatFloat(v)
		}
		if _, err := io.WriteString(w, strings.Join(rec, " ")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
