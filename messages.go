package main

import "time"

// TUI messages for the Elm architecture

// loadDoneMsg reports the outcome of a background file load. Exactly one is
// sent per load request; on error the previous dataset stays untouched.
type loadDoneMsg struct {
	result *LoadResult
	err    error
}

// clipboardDoneMsg reports the outcome of a clipboard export.
type clipboardDoneMsg struct {
	count int
	err   error
}

// snapshotDoneMsg reports the outcome of a JSON snapshot export.
type snapshotDoneMsg struct {
	filename string
	err      error
}

// statusTickMsg triggers a re-render so expired status messages disappear.
type statusTickMsg time.Time
