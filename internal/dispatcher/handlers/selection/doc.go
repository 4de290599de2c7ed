// Package selection provides handlers for occurrence-based selection
// commands.
//
// This package implements multi-selection of matching text:
//   - Select all other occurrences of the selection or word under caret
//   - Add the next occurrence to the selection set
//   - Collapse back to the primary selection
//
// When the command starts from a caret (no selection), the word under
// the caret seeds the search and matches must align with word
// boundaries. When it starts from a non-empty selection, the selected
// text is matched literally anywhere, including inside longer tokens.
package selection
