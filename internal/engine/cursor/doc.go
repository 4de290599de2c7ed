// Package cursor provides selection management for editor commands.
//
// Selections use an anchor/head model:
//
//   - Anchor: the position where the selection started
//   - Head: the current cursor position
//
// When Anchor == Head the selection is just a caret. SelectionSet holds
// the editor's active selections, sorted by position, with overlapping
// selections merged. Adjacent but non-overlapping selections stay
// separate so distinct occurrence matches that touch each other remain
// individually selected.
package cursor
