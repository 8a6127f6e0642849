package main

import (
	"encoding/csv"
	"strings"
)

// Detection constants
const (
	// SniffSampleSize bounds how much of the file the statistical sniffer
	// inspects before the exhaustive fallback takes over.
	SniffSampleSize = 4096

	// SniffMaxLines caps how many sample lines the sniffer scores.
	SniffMaxLines = 50
)

// sniffCandidates is the delimiter set the statistical sniffer considers.
var sniffCandidates = []rune{',', ';', '\t', '|'}

// trialOrder is the fixed priority order for the exhaustive fallback.
var trialOrder = []rune{';', ',', '\t', '|'}

// detectFormat determines the field delimiter and header presence for raw
// file content. It runs an ordered fallback chain and stops at the first
// success:
//
//  1. statistical sniff over a bounded prefix
//  2. exhaustive trial of each candidate delimiter, committed by the first
//     cell that parses as an IPv4 address
//
// If neither step proves a delimiter, ErrDelimiterUndetectable is returned.
func detectFormat(content string) (delim rune, hasHeader bool, err error) {
	if delim, hasHeader, ok := sniffFormat(content); ok {
		return delim, hasHeader, nil
	}
	return trialFormat(content)
}

// sniffFormat scores each candidate delimiter over the sample prefix: a
// candidate wins when it appears a consistent, non-zero number of times on
// every sampled line. Ties go to the candidate with the higher per-line
// count, then to candidate order.
func sniffFormat(content string) (rune, bool, bool) {
	lines := sampleLines(content)
	if len(lines) < 2 {
		return 0, false, false
	}

	best := rune(0)
	bestCount := 0
	for _, cand := range sniffCandidates {
		count := strings.Count(lines[0], string(cand))
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(cand)) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}
	if best == 0 {
		return 0, false, false
	}

	return best, sniffHeader(lines, best), true
}

// sniffHeader decides whether the first sampled row is a header: its cells
// must be non-numeric-looking while most later rows carry at least one
// numeric or address-like cell.
func sniffHeader(lines []string, delim rune) bool {
	if !looksLikeHeader(strings.Split(lines[0], string(delim))) {
		return false
	}
	numericRows := 0
	for _, line := range lines[1:] {
		for _, cell := range strings.Split(line, string(delim)) {
			if numericLooking(cleanCell(cell)) {
				numericRows++
				break
			}
		}
	}
	return numericRows*2 >= len(lines)-1
}

// sampleLines returns complete non-empty lines from the sniff sample. When
// the content is longer than the sample, the final line is discarded since
// it may be truncated mid-row.
func sampleLines(content string) []string {
	sample := content
	truncated := false
	if len(sample) > SniffSampleSize {
		sample = sample[:SniffSampleSize]
		truncated = true
	}

	raw := strings.Split(strings.ReplaceAll(sample, "\r\n", "\n"), "\n")
	if truncated && len(raw) > 0 {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == SniffMaxLines {
			break
		}
	}
	return lines
}

// trialFormat splits the entire content with each candidate delimiter in
// priority order and commits to the first delimiter under which some cell
// of a data row parses as an IPv4 address.
func trialFormat(content string) (rune, bool, error) {
	for _, cand := range trialOrder {
		rows, err := splitRows(content, cand)
		if err != nil || len(rows) < 2 {
			continue
		}
		if !anyCellIPv4(rows[1:]) {
			continue
		}
		return cand, looksLikeHeader(rows[0]), nil
	}
	return 0, false, ErrDelimiterUndetectable
}

// anyCellIPv4 reports whether any cell in rows holds a valid IPv4 address
// after cleaning.
func anyCellIPv4(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if isIPv4(cleanCell(cell)) {
				return true
			}
		}
	}
	return false
}

// looksLikeHeader reports whether a first row reads as column names rather
// than data: no non-empty cell may be purely numeric once '.' and ':' are
// stripped. The stripping rule is what keeps "1.2.3.4" and "10:30" counted
// as data while "ip_address" counts as a name.
func looksLikeHeader(cells []string) bool {
	for _, cell := range cells {
		if numericLooking(cell) {
			return false
		}
	}
	return true
}

// numericLooking reports whether a cell is purely numeric after the
// header-heuristic stripping rule is applied.
func numericLooking(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	stripped := strings.Map(func(r rune) rune {
		if r == '.' || r == ':' {
			return -1
		}
		return r
	}, cell)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitRows splits content into rows of cells using the given delimiter.
// The reader is deliberately lenient: ragged rows and stray quotes are data
// here, not errors.
func splitRows(content string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
