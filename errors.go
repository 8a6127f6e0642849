package main

import (
	"errors"
	"fmt"
)

// Pipeline error taxonomy. Every failure in the load/export pipeline wraps
// one of these sentinels so the UI can map it to a short status message.
// None of them terminate the process.
var (
	// ErrNotAFile means the path does not resolve to a regular, readable file.
	ErrNotAFile = errors.New("not a file")

	// ErrUnsupportedFileType means the file extension is not in the allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrDelimiterUndetectable means no candidate delimiter produced rows
	// containing an IPv4-shaped cell.
	ErrDelimiterUndetectable = errors.New("could not determine delimiter")

	// ErrNoAddressesFound means the file parsed fine but contained no valid
	// IPv4 addresses.
	ErrNoAddressesFound = errors.New("no valid IPv4 addresses found")

	// ErrEncoding means the file content could not be decoded even by the
	// tolerant decoder.
	ErrEncoding = errors.New("encoding error")

	// ErrPermissionDenied means the file exists but could not be read.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSerialization means a snapshot export could not be written.
	ErrSerialization = errors.New("export write failed")
)

// statusForError maps a pipeline error to the short human-readable message
// shown in the status line. Unknown errors are surfaced generically so the
// UI never crashes on unexpected input.
func statusForError(err error) string {
	switch {
	case errors.Is(err, ErrNotAFile):
		return "Not a file!"
	case errors.Is(err, ErrUnsupportedFileType):
		return "Unsupported file type!"
	case errors.Is(err, ErrDelimiterUndetectable):
		return "CSV format error: could not determine delimiter"
	case errors.Is(err, ErrNoAddressesFound):
		return "No valid IPv4 addresses found!"
	case errors.Is(err, ErrEncoding):
		return "Encoding error - check file format"
	case errors.Is(err, ErrPermissionDenied):
		return "Permission denied reading file"
	case errors.Is(err, ErrSerialization):
		return fmt.Sprintf("JSON save error: %v", err)
	default:
		return fmt.Sprintf("Parse error: %v", err)
	}
}
