// Package collab turns grouped membership records (a movie and its cast)
// into a collaboration graph plus an edge label index.
//
// For every group every ordered pair of distinct members becomes a directed
// edge, so each group becomes a complete directed graph on its members. The
// k·(k−1) blow-up per group is accepted: casts are small compared with the corpus.
//
// EdgeLabels answers "which group connected these two members?" for every
// edge Build produced, in both directions. When several groups connect the
// same pair the first group in input order keeps the label; Index.Conflicts
// reports how many pairs were contested.
package collab
