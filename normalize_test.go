package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestTerraformEntries(t *testing.T) {
	ips := []string{"1.2.3.4", "5.6.7.8"}
	want := []string{`"1.2.3.4/32"`, `"5.6.7.8/32"`}

	got := terraformEntries(ips)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCidrBlocks(t *testing.T) {
	ips := []string{"10.0.0.1", "10.0.0.2"}
	want := []string{"10.0.0.1/32", "10.0.0.2/32"}

	got := cidrBlocks(ips)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTerraformList(t *testing.T) {
	tests := []struct {
		name string
		ips  []string
		want string
	}{
		{
			name: "two entries joined without spaces",
			ips:  []string{"1.2.3.4", "5.6.7.8"},
			want: `["1.2.3.4/32","5.6.7.8/32"]`,
		},
		{
			name: "single entry no trailing comma",
			ips:  []string{"9.9.9.9"},
			want: `["9.9.9.9/32"]`,
		},
		{
			name: "empty list",
			ips:  nil,
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := terraformList(tt.ips); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNormalizationOneToOne(t *testing.T) {
	ips := []string{"1.1.1.1", "2.2.2.2", "1.1.1.1", "3.3.3.3"}

	entries := terraformEntries(ips)
	blocks := cidrBlocks(ips)

	if len(entries) != len(ips) {
		t.Errorf("terraform entries: expected %d, got %d", len(ips), len(entries))
	}
	if len(blocks) != len(ips) {
		t.Errorf("cidr blocks: expected %d, got %d", len(ips), len(blocks))
	}
}

func TestCidrBlocksRoundTrip(t *testing.T) {
	// Stripping the /32 suffix must give back the original address exactly
	ips := []string{"192.168.1.1", "10.0.0.1", "172.16.254.3"}

	for i, block := range cidrBlocks(ips) {
		back := strings.TrimSuffix(block, "/32")
		if back != ips[i] {
			t.Errorf("round trip: expected %s, got %s", ips[i], back)
		}
	}
}

func TestNormalizationOrderPreserved(t *testing.T) {
	ips := []string{"3.3.3.3", "1.1.1.1", "2.2.2.2"}

	for i, entry := range terraformEntries(ips) {
		if !strings.Contains(entry, ips[i]) {
			t.Errorf("entry %d: expected to contain %s, got %s", i, ips[i], entry)
		}
	}
}
