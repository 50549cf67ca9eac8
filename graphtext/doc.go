// Package graphtext serializes core graphs to a line-oriented text
// format and exposes the matching mutation command surface.
//
// # Format
//
// Whitespace-tokenized lines, three sections in fixed order:
//
//	<directed|undirected> <weighted|unweighted> [int|float]
//	vertices
//	<id> [label]
//	...
//	edges
//	<from> <to> [weight]
//	...
//
// The header's kind token is optional and defaults to int; Encode
// always writes it. The literal marker lines "vertices" and "edges"
// are both required, even when their sections are empty. Vertex labels
// and edge weights appear per line exactly as the graph stores them:
// a weighted graph requires the weight token on every edge line, an
// unweighted graph forbids it. Undirected graphs write each edge once
// with from <= to; directed graphs write every stored arc. Lines list
// in ascending ID order, so equal graphs encode to equal text.
//
// A vertex whose ID is the literal "edges" and that carries no label
// is indistinguishable from the section marker; the marker wins.
//
// # Commands
//
// Session holds the current graph and applies the mutation surface by
// mnemonic:
//
//	n  <directed|undirected> <weighted|unweighted> [int|float]
//	+v <id> [label]
//	-v <id>
//	+e <from> <to> [weight]
//	-e <from> <to>
//	lf <path>
//	sf <path>
//
// Argument-count and argument-format checks run before the graph is
// consulted, except that +e requires the graph right after the count:
// its weight literal parses by the graph's kind. Graph rule violations
// surface as core's own errors.
//
// # Errors
//
//   - ErrArgumentCount - wrong number of tokens for a line or command.
//   - ArgumentError{Index} - token at the 1-based index failed to parse.
//   - ErrGraphNotExist - a command needed a graph before n or lf ran.
//   - ErrEmptyInput - Decode saw no lines at all.
//   - ErrVerticesHeader / ErrEdgesHeader - a marker line was missing
//     or misplaced.
//   - ErrUnknownCommand - mnemonic outside the table above.
//   - FileError - ReadFile/WriteFile wrap OS failures with the path.
//
// Decode errors are wrapped with their 1-based line number.
package graphtext
