// Package types defines the five record collections of the workbench
// (tasks, notes, expenses, vault items, songs), their validation rules,
// the standard errors, and the id generator shared by all producers.
package types
