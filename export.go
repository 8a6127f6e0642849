package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// snapshot is the JSON document written by the save action. It is built
// once per export and never mutated afterwards.
type snapshot struct {
	ExportTimestamp string   `json:"export_timestamp"`
	SourceFile      string   `json:"source_file"`
	SourceName      string   `json:"source_name"`
	IPv4Count       int      `json:"ipv4_count"`
	TerraformList   string   `json:"terraform_list"`
	CidrBlocks      []string `json:"cidr_blocks"`
}

// newSnapshot assembles the export document for the given addresses.
// sourcePath may be empty when nothing was ever loaded, in which case the
// literal "unknown" is recorded.
func newSnapshot(sourcePath string, ips []string, now time.Time) snapshot {
	sourceFile := "unknown"
	sourceName := "unknown"
	if sourcePath != "" {
		sourceFile = sourcePath
		sourceName = filepath.Base(sourcePath)
	}
	return snapshot{
		ExportTimestamp: now.Format(time.RFC3339),
		SourceFile:      sourceFile,
		SourceName:      sourceName,
		IPv4Count:       len(ips),
		TerraformList:   terraformList(ips),
		CidrBlocks:      cidrBlocks(ips),
	}
}

// snapshotFilename builds the output file name,
// terraform_iocs_<count>_<YYYYMMDD_HHMMSS>.json. The timestamp keeps names
// unique per save; two saves of the same count within one second could
// collide, which is accepted.
func snapshotFilename(count int, now time.Time) string {
	return fmt.Sprintf("terraform_iocs_%d_%s.json", count, now.Format("20060102_150405"))
}

// saveSnapshot writes a pretty-printed snapshot into outputDir and returns
// the file name. Write failures wrap ErrSerialization.
func saveSnapshot(outputDir, sourcePath string, ips []string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	snap := newSnapshot(sourcePath, ips, now)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	name := snapshotFilename(len(ips), now)
	if err := os.WriteFile(filepath.Join(outputDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return name, nil
}

// copyTerraformList places the Terraform list literal on the system
// clipboard.
func copyTerraformList(ips []string) error {
	return clipboard.WriteAll(terraformList(ips))
}
