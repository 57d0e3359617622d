// Package csvutil materializes labeled numeric records from CSV input and
// resolves user supplied column selectors against the file header.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"sift/internal/dataset"
	"sift/internal/geom"
)

// Column selects a CSV column either by header name or by zero based index.
type Column struct {
	name  string
	index int
	byIdx bool
}

// ParseColumn treats a non-negative integer as an index and anything else
// as a header name.
func ParseColumn(given string) Column {
	if index, err := strconv.Atoi(given); err == nil && index >= 0 {
		return Column{index: index, byIdx: true}
	}
	return Column{name: given}
}

func (c Column) String() string {
	if c.byIdx {
		return strconv.Itoa(c.index)
	}
	return c.name
}

// ParseColumns parses every selector in the given order.
func ParseColumns(given []string) []Column {
	columns := make([]Column, len(given))
	for i, s := range given {
		columns[i] = ParseColumn(s)
	}
	return columns
}

type Reader struct {
	cr        *csv.Reader
	hasHeader bool
}

func NewReader(r io.Reader, hasHeader bool) *Reader {
	cr := csv.NewReader(r)
	return &Reader{cr: cr, hasHeader: hasHeader}
}

// ResolveColumns resolves the label selector and the data column selectors
// into concrete indices, consuming the header row when the file has one.
// Named selectors are an error for headerless files.
func (r *Reader) ResolveColumns(label Column, retrieve []Column) (int, []int, error) {
	columns := make([]int, 0, len(retrieve))

	if !r.hasHeader {
		for _, col := range retrieve {
			if !col.byIdx {
				return 0, nil, fmt.Errorf("no headers were specified in the csv but given a named column: %s", col.name)
			}
			columns = append(columns, col.index)
		}
		if !label.byIdx {
			return 0, nil, fmt.Errorf("no headers were specified in the csv but given a named label column: %s", label.name)
		}
		return label.index, columns, nil
	}

	row, err := r.cr.Read()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to retrieve csv headers: %w", err)
	}
	headers := make(map[string]int, len(row))
	for index, name := range row {
		headers[name] = index
	}

	for _, col := range retrieve {
		index, err := resolve(headers, col)
		if err != nil {
			return 0, nil, err
		}
		columns = append(columns, index)
	}
	labelIndex, err := resolve(headers, label)
	if err != nil {
		return 0, nil, fmt.Errorf("label column: %w", err)
	}
	return labelIndex, columns, nil
}

func resolve(headers map[string]int, col Column) (int, error) {
	if col.byIdx {
		if col.index >= len(headers) {
			return 0, fmt.Errorf("index is out of range for known headers, column index: %d", col.index)
		}
		return col.index, nil
	}
	index, ok := headers[col.name]
	if !ok {
		return 0, fmt.Errorf("unknown column header specified, column: %s", col.name)
	}
	return index, nil
}

// Collect reads the remaining rows into labeled records. Every record
// gathers the values at the resolved column indices, in selector order, so
// all feature vectors share the same arity.
func (r *Reader) Collect(label int, columns []int) ([]dataset.Record, error) {
	var records []dataset.Record
	row := 0
	for {
		fields, err := r.cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv record, row %d: %w", row, err)
		}

		vec := make([]float64, 0, len(columns))
		for _, col := range columns {
			if col >= len(fields) {
				return nil, fmt.Errorf("column data not found, row: %d column index: %d", row, col+1)
			}
			value, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse column data, row: %d column index: %d", row, col+1)
			}
			vec = append(vec, value)
		}
		if label >= len(fields) {
			return nil, fmt.Errorf("failed to find label, row: %d label index: %d", row, label)
		}
		records = append(records, dataset.Record{Vec: geom.New(vec), Label: fields[label]})
	}
	return records, nil
}
