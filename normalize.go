package main

import (
	"fmt"
	"strings"
)

// cidrSuffix is the only prefix length this tool emits: one /32 per address.
const cidrSuffix = "/32"

// terraformEntries maps each address to its quoted Terraform-literal form,
// `"ip/32"`, preserving order. No validation is re-applied; input comes
// from the extractor already verified.
func terraformEntries(ips []string) []string {
	entries := make([]string, len(ips))
	for i, ip := range ips {
		entries[i] = fmt.Sprintf("%q", ip+cidrSuffix)
	}
	return entries
}

// cidrBlocks maps each address to its clean `ip/32` form, preserving order.
// This is the representation used for the JSON cidr_blocks array.
func cidrBlocks(ips []string) []string {
	blocks := make([]string, len(ips))
	for i, ip := range ips {
		blocks[i] = ip + cidrSuffix
	}
	return blocks
}

// terraformList joins the quoted entries into a Terraform/HCL list literal:
// ["a/32","b/32"] with no spaces and no trailing comma.
func terraformList(ips []string) string {
	return "[" + strings.Join(terraformEntries(ips), ",") + "]"
}
