package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xuri/excelize/v2"
)

// Column headers shared by every writer.
const (
	HeaderIndex = "Matrix Number"
	HeaderValue = "Z-Shift Value"

	// SheetName is the worksheet written by WriteXLSX.
	SheetName = "Z-Shift"

	// tableDecimals is the precision of WriteTable.
	tableDecimals = 4
)

// Format selects an output writer.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// ErrUnknownFormat is returned by ParseFormat and Write for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders zs to w in format f.
func Write(w io.Writer, f Format, zs []float64) error {
	switch f {
	case FormatTable:
		return WriteTable(w, zs)
	case FormatCSV:
		return WriteCSV(w, zs)
	case FormatXLSX:
		return WriteXLSX(w, zs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteCSV writes the header and one "i,z" record per value, i from 1.
// Values use the shortest representation that round-trips.
func WriteCSV(w io.Writer, zs []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{HeaderIndex, HeaderValue}); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for i, z := range zs {
		rec := []string{strconv.Itoa(i + 1), strconv.FormatFloat(z, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}

	return nil
}

// WriteXLSX writes a workbook with one sheet holding the header row and
// one numeric row per value.
func WriteXLSX(w io.Writer, zs []float64) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close workbook: %w", cerr)
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("report: name sheet: %w", err)
	}
	if err = f.SetSheetRow(SheetName, "A1", &[]any{HeaderIndex, HeaderValue}); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for i, z := range zs {
		cell, cerr := excelize.CoordinatesToCellName(1, i+2)
		if cerr != nil {
			return fmt.Errorf("report: cell for row %d: %w", i+1, cerr)
		}
		if err = f.SetSheetRow(SheetName, cell, &[]any{i + 1, z}); err != nil {
			return fmt.Errorf("report: write row %d: %w", i+1, err)
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}

	return nil
}

// WriteTable writes a right-aligned two-column table with 4-decimal values.
func WriteTable(w io.Writer, zs []float64) error {
	idx := make([]string, len(zs)+1)
	val := make([]string, len(zs)+1)
	idx[0], val[0] = HeaderIndex, HeaderValue
	for i, z := range zs {
		idx[i+1] = strconv.Itoa(i + 1)
		val[i+1] = strconv.FormatFloat(z, 'f', tableDecimals, 64)
	}

	table := lipgloss.JoinHorizontal(lipgloss.Top,
		column.Render(strings.Join(idx, "\n")),
		column.MarginLeft(2).Render(strings.Join(val, "\n")),
	)
	if _, err := fmt.Fprintln(w, table); err != nil {
		return fmt.Errorf("report: write table: %w", err)
	}

	return nil
}

// column right-aligns every line to the widest one.
var column = lipgloss.NewStyle().Align(lipgloss.Right)
