// Package ftr implements the Fluent-Time-Resource canonical requirement model
// of spec §3/§4.3: persistence conditions over state variables are extracted
// into FluentTimeResource values keyed by (interval, location), compacted
// when they share a key, and capped against the organization model's
// functional-saturation bound and the mission's available resource pool.
//
// ModelPool is a small multiset type with the per-key max/min/+/- algebra
// the compaction rules need; Role and RoleInfo give the CSP and timeline
// packages an O(1) role-to-model lookup instead of re-deriving it from the
// pool on every branch.
package ftr
