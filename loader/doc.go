// Package loader reads ePC-SAFT parameter databases and assembles the
// inputs of params.New.
//
// What:
//
//   - ReadPureRecords / ReadBinaryEntries: decode a database file — a JSON
//     or YAML list of records — with the format chosen by file extension.
//   - Select: pick components out of a database by name or CAS number,
//     preserving the requested order.
//   - BinaryMatrixFor: turn a sparse pair list into the dense matrix the
//     parameter builder consumes; pairs referencing components outside the
//     selection are skipped (databases are broader than any one system).
//   - NewSet: the one-call path from files to a built Set.
//
// The core stays I/O-free; this package is the outer data-loading layer.
//
// Errors:
//
//   - ErrUnknownFormat: file extension is neither .json nor .yaml/.yml.
//   - ErrComponentNotFound: a requested component is not in the database.
//   - ErrDuplicatePair: two entries cover the same component pair.
package loader
