package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSnapshotFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	got := snapshotFilename(2, now)
	want := "terraform_iocs_2_20260831_140509.json"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	ips := []string{"1.2.3.4", "5.6.7.8"}
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	name, err := saveSnapshot(dir, "/data/feeds/iocs.csv", ips, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshaling snapshot: %v", err)
	}

	if snap.IPv4Count != 2 {
		t.Errorf("ipv4_count: expected 2, got %d", snap.IPv4Count)
	}
	if want := []string{"1.2.3.4/32", "5.6.7.8/32"}; !reflect.DeepEqual(snap.CidrBlocks, want) {
		t.Errorf("cidr_blocks: expected %v, got %v", want, snap.CidrBlocks)
	}
	if want := `["1.2.3.4/32","5.6.7.8/32"]`; snap.TerraformList != want {
		t.Errorf("terraform_list: expected %s, got %s", want, snap.TerraformList)
	}
	if snap.SourceFile != "/data/feeds/iocs.csv" {
		t.Errorf("source_file: got %s", snap.SourceFile)
	}
	if snap.SourceName != "iocs.csv" {
		t.Errorf("source_name: got %s", snap.SourceName)
	}
	if _, err := time.Parse(time.RFC3339, snap.ExportTimestamp); err != nil {
		t.Errorf("export_timestamp not RFC3339: %s", snap.ExportTimestamp)
	}

	// Pretty-printed with 2-space indent
	if !strings.Contains(string(data), "\n  \"export_timestamp\"") {
		t.Errorf("snapshot not indented with 2 spaces:\n%s", data)
	}
}

func TestSaveSnapshotUnknownSource(t *testing.T) {
	name, err := saveSnapshot(t.TempDir(), "", nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(name, "terraform_iocs_0_") {
		t.Errorf("unexpected filename: %s", name)
	}

	snap := newSnapshot("", nil, time.Now())
	if snap.SourceFile != "unknown" || snap.SourceName != "unknown" {
		t.Errorf("expected unknown source, got %s / %s", snap.SourceFile, snap.SourceName)
	}
	if snap.TerraformList != "[]" {
		t.Errorf("expected empty list literal, got %s", snap.TerraformList)
	}
}

func TestSaveSnapshotCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	if _, err := saveSnapshot(dir, "x.csv", []string{"1.1.1.1"}, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestSaveSnapshotWriteFailure(t *testing.T) {
	// A regular file where the output dir should be makes MkdirAll fail
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := saveSnapshot(blocked, "x.csv", []string{"1.1.1.1"}, time.Now())
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}
