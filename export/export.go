// Package export writes the food groups to spreadsheet, YAML or JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/aguxez/foodpick/models"
)

const SheetName = "Groups"

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}
}

// ToFile writes groups to path in the format implied by its extension.
func ToFile(path string, groups []models.Group) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, format, groups); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func Write(w io.Writer, format Format, groups []models.Group) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(w, groups)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(groups); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// writeXLSX lays the groups out side by side: the title in row 1 and the
// foods below it.
func writeXLSX(w io.Writer, groups []models.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, g := range groups {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, g.Title); err != nil {
			return fmt.Errorf("writing title %q: %w", g.Title, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, bold); err != nil {
			return fmt.Errorf("styling title %q: %w", g.Title, err)
		}

		for row, food := range g.Foods {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(SheetName, cell, food.Name); err != nil {
				return fmt.Errorf("writing food %q: %w", food.Name, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ReadXLSX reads a workbook written by ToFile back into title -> foods
// columns, in column order.
func ReadXLSX(r io.Reader) ([]models.Group, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	cols, err := f.GetCols(SheetName)
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	groups := make([]models.Group, 0, len(cols))
	for _, col := range cols {
		if len(col) == 0 {
			continue
		}
		var foods []string
		for _, v := range col[1:] {
			if v != "" {
				foods = append(foods, v)
			}
		}
		groups = append(groups, models.NewGroup(col[0], foods...))
	}
	return groups, nil
}
