// Package docs2prompt collects documentation from GitHub repositories and
// documentation websites and flattens it into a single text blob suitable
// for prompting a language model.
//
// This package contains domain types, interfaces and the discovery
// heuristics following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., github/, goquery/, htmltomarkdown/).
package docs2prompt
