package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNotAFile, "Not a file!"},
		{ErrUnsupportedFileType, "Unsupported file type!"},
		{ErrDelimiterUndetectable, "CSV format error: could not determine delimiter"},
		{ErrNoAddressesFound, "No valid IPv4 addresses found!"},
		{ErrEncoding, "Encoding error - check file format"},
		{ErrPermissionDenied, "Permission denied reading file"},
	}

	for _, tt := range tests {
		if got := statusForError(tt.err); got != tt.want {
			t.Errorf("statusForError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("%w: .pdf", ErrUnsupportedFileType)
	if got := statusForError(wrapped); got != "Unsupported file type!" {
		t.Errorf("wrapped sentinel not recognized: %q", got)
	}
}

func TestStatusForUnknownError(t *testing.T) {
	got := statusForError(errors.New("something odd"))
	if !strings.HasPrefix(got, "Parse error:") {
		t.Errorf("unknown errors should surface generically, got %q", got)
	}
	if !strings.Contains(got, "something odd") {
		t.Errorf("unknown error text lost: %q", got)
	}
}
