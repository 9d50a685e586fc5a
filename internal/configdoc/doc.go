// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package configdoc generates the reference page of the navgen.hcl project
// file from the HCL struct definitions in internal/config.
//
// It reads:
//   - Go doc comments on types and fields
//   - HCL struct tags (attribute names, optional, block, label)
//   - annotation comments (@default, @enum, @example)
//
// Sidebar bodies are decoded by hand and have no struct form, so their
// entries (doc, category, link) are described by a fixed table.
package configdoc
