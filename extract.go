package main

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions is the file-type allow-list checked before any parsing.
var allowedExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
	".txt": true,
	".log": true,
}

// LoadResult is the outcome of one successful load. A new load replaces the
// previous result wholesale; there is no history.
type LoadResult struct {
	// Path is the source file as given by the user.
	Path string

	// IPs holds every valid IPv4 address in file order. Duplicates are
	// preserved and the cleaned original token is kept verbatim.
	IPs []string

	// Delimiter is the field separator the detector committed to.
	Delimiter rune

	// HasHeader records whether row 0 was skipped as a header.
	HasHeader bool
}

// loadFile runs the full ingestion pipeline for one file: gate, decode,
// detect, extract. Every failure wraps one of the taxonomy sentinels.
func loadFile(path string) (*LoadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := decodePermissive(raw)
	if err != nil {
		return nil, err
	}

	delim, hasHeader, err := detectFormat(content)
	if err != nil {
		return nil, err
	}

	ips := extractIPs(content, delim, hasHeader)
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAddressesFound, filepath.Base(path))
	}

	return &LoadResult{
		Path:      path,
		IPs:       ips,
		Delimiter: delim,
		HasHeader: hasHeader,
	}, nil
}

// extractIPs scans every cell of every data row and collects the cleaned
// tokens that validate as IPv4, in encounter order. Row 0 is skipped when a
// header was detected. Invalid tokens are silently ignored.
func extractIPs(content string, delim rune, hasHeader bool) []string {
	rows, err := splitRows(content, delim)
	if err != nil {
		// The detector committed this delimiter with the same splitter, so
		// a failure here means the content changed under us; treat as empty.
		return nil
	}

	var ips []string
	for i, row := range rows {
		if hasHeader && i == 0 {
			continue
		}
		for _, cell := range row {
			if token := cleanCell(cell); isIPv4(token) {
				ips = append(ips, token)
			}
		}
	}
	return ips
}

// cleanCell trims surrounding whitespace and stray quote characters from a
// raw cell before validation.
func cleanCell(cell string) string {
	return strings.Trim(strings.TrimSpace(cell), `"' `)
}

// isIPv4 reports whether a cleaned token is a syntactically valid dotted-quad
// IPv4 address. Ports, masks, IPv6 and leading-zero octets are all rejected,
// matching what strict standard-library parsing accepts. It runs on every
// cell, so free text like version strings can false-positive; that is a
// known and accepted limitation.
func isIPv4(token string) bool {
	if token == "" {
		return false
	}
	addr, err := netip.ParseAddr(token)
	return err == nil && addr.Is4()
}
