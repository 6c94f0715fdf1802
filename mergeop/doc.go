// Package mergeop merges VDF documents.
//
// Merge is used to overlay one config fragment onto another, the way
// Steam's own tooling layers user config over defaults: objects merge
// recursively, leaves from the overlay win, and new keys append after
// the base's keys so both documents keep their order.
package mergeop
