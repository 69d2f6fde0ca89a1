package filewatch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const foodHeader = "Food Name"

// ParseFoods reads and parses food names from CSV
func ParseFoods(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening foods file: %w", err)
	}
	defer f.Close()

	return ReadFoods(f)
}

// ReadFoods parses a "Food Name" CSV. Blank rows are skipped.
func ReadFoods(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != 1 || strings.TrimPrefix(header[0], "\ufeff") != foodHeader {
		return nil, fmt.Errorf("invalid header format: expected ['%s'], got %v", foodHeader, header)
	}

	foods := []string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		if len(record) != 1 {
			return nil, fmt.Errorf("invalid record format at food: %v", record)
		}
		if record[0] == "" {
			continue
		}

		foods = append(foods, record[0])
	}

	return foods, nil
}

// WriteFoods writes names in the format ReadFoods accepts.
func WriteFoods(w io.Writer, names []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{foodHeader}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, n := range names {
		if err := cw.Write([]string{n}); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// GroupTitle is the group a CSV file imports into: its base name without
// the extension.
func GroupTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
