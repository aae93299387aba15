// Package vm builds the inventory of VMware virtual machines found under a
// directory and dispatches power actions to them.
//
// An inventory is a snapshot. Each call to BuildInventory walks the directory
// tree for .vmx files, reads every display name, and marks a VM as running if
// vmrun listed its configuration path at the time of the call. Nothing is
// cached between calls.
//
// The operations are:
//   - BuildInventory: List every VM under a root directory
//   - FindByName: Look up one VM by display name, ignoring case
//   - Manage: Start, stop, or suspend a VM through vmrun
//
// Error Handling:
//
// The scan is best-effort. Entries that cannot be read (permission errors,
// files removed mid-walk, unreadable .vmx files) are skipped and logged at
// debug level. Failures on the root directory itself, or while querying
// vmrun, abort the operation.
package vm
