// Package report renders ordered shift estimates for people and spreadsheets.
//
// Every writer numbers results from 1 in input order under the columns
// "Matrix Number" and "Z-Shift Value":
//
//   - WriteCSV: RFC 4180 CSV with full round-trip precision.
//   - WriteXLSX: a single-sheet Excel workbook ("Z-Shift").
//   - WriteTable: a right-aligned console table with 4 decimals.
//
// Write dispatches on a Format parsed by ParseFormat.
package report
