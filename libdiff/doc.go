// Package libdiff computes line diffs between VDF documents.
//
// Documents are canonically encoded first, so two files that differ
// only in cosmetic indentation or comments diff as equal.
package libdiff
