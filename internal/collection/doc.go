// Package collection implements the task collection engine: the mutation
// operations, the derived statistics, and the filter/search/sort view
// pipeline.
//
// # Snapshots
//
// A collection is a plain []model.Task in insertion order. Every operation
// here is pure: it takes a snapshot, returns a new snapshot, and never
// writes through to its input. Mutations that reference a task id which is
// not present return the input unchanged together with changed=false; a
// missing id is not an error.
//
// # Status derivation
//
// Task status is never set directly. UpdateProgress derives it from the
// new percentage, and ToggleComplete derives it from the completion flag:
// completing forces the percentage to 100 (even from 0), un-completing
// keeps the prior percentage and labels the task in_progress when that
// value is above zero, pending otherwise.
//
// # View pipeline
//
// ApplyView runs search, then status filter, then sort. The priority
// comparator weighs high above low before the order flag is applied, so
// ascending priority order lists high-to-low; this matches the behavior
// users already rely on and is kept deliberately.
package collection
