// Package commands defines the kanban CLI.
//
// Commands
//
//   - kanban         Open the seed lists in the terminal board viewer
//   - kanban show    Print the seed lists as YAML (default) or JSON
//
// The viewer is read-only: it navigates, searches and fuzzy-finds cards but
// never edits or saves them.
package commands
