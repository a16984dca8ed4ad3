package matrixio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the keyed form of a JSON/YAML matrix file.
type document struct {
	Matrix [][]float64 `yaml:"matrix"`
}

// readYAML accepts either a bare list of rows or a {matrix: rows} document.
// JSON is valid YAML, so one decoder serves both extensions.
func readYAML(r io.Reader) ([][]float64, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	if root.Kind == yaml.MappingNode {
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
		}
		return doc.Matrix, nil
	}

	var rows [][]float64
	if err := root.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	return rows, nil
}

// readCSV reads comma-separated rows. Row lengths may differ here; the
// matrix constructor rejects ragged input.
func readCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("matrixio: csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// readText reads whitespace-separated rows; blank lines and lines starting
// with '#' are skipped.
func readText(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	var rows [][]float64
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseRow(strings.Fields(text), line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: txt: %w", err)
	}

	return rows, nil
}

func parseRow(fields []string, line int) ([]float64, error) {
	row := make([]float64, len(fields))
	for j, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadValue, line, j+1, f)
		}
		row[j] = v
	}

	return row, nil
}
