// Package render prints the command-line views of the voter research tool.
//
// A Printer writes to any io.Writer through its own lipgloss renderer, so
// colors are emitted only when the writer is a color-capable terminal and
// tests see plain text.
package render
