// Package main implements tfipnorm, a TUI application that extracts IPv4
// addresses from delimited text files and re-emits them as Terraform-style
// /32 CIDR literals.
//
// tfipnorm provides an interactive terminal interface to:
//   - Browse an input directory or type a path to load a CSV/TSV/TXT/LOG file
//   - Auto-detect the field delimiter and header row
//   - Collect every syntactically valid IPv4 address in file order
//   - Copy the Terraform list literal ["ip/32",...] to the clipboard
//   - Save a timestamped JSON snapshot into an output directory
//
// The application uses the Bubbletea framework with the Elm architecture
// pattern for state management.
//
// # Architecture
//
// The codebase is organized into the following components:
//
//   - model.go: Core TUI model with Init, Update, and View methods
//   - detect.go: Delimiter sniffing and header detection
//   - extract.go: File gating, permissive load and IPv4 extraction
//   - normalize.go: Pure /32 CIDR formatting
//   - export.go: Clipboard and JSON snapshot exports
//   - reader.go: BOM and invalid-byte tolerant decoding
//   - errors.go: Pipeline error taxonomy and status mapping
//   - config.go: Environment-driven configuration
//   - logging.go: Structured file logging setup
//   - styles.go: Lipgloss styles for terminal rendering
//   - keys.go: Key bindings configuration
//   - messages.go: TUI message types for the Elm architecture
//   - helpers.go: Utility functions for string formatting
//
// # Pipeline
//
// A load runs as a background command and resolves to a single message:
// either a LoadResult carrying the ordered address list, or one of the
// sentinel errors in errors.go. A failed load never disturbs the previously
// loaded dataset.
package main
