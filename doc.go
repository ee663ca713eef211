// Package costar finds the shortest co-star chain between any performer and a
// fixed reference performer ("six degrees of Kevin Bacon").
//
// Movies and their casts go in; every pair of performers who shared a movie
// becomes a pair of directed edges labelled with that movie. One BFS from the
// reference answers every later query, and each answer is explained hop by
// hop:
//
//	B was connected to A via M2
//	A was connected to Kevin Bacon via M1
//
// Packages, bottom-up:
//
//	core/       directed, unweighted adjacency-list Graph over string labels
//	bfs/        breadth-first search with per-node distance and parent
//	dfs/        depth-first traversal and connected components
//	collab/     builds the collaboration graph and its edge labels from groups
//	explain/    turns a BFS result plus labels into a step-by-step chain
//	oracle/     one immutable index + search; Holder swaps it on reload
//	dataset/    "M:" cast file format, Postgres source, file watcher
//	builder/    deterministic synthetic cast generator
//	internal/   config, logging, metrics, gin middleware and HTTP API
//	cmd/costar  CLI: query, serve, stats, datagen
//
// Quick example:
//
//	orc, err := oracle.New([]collab.Group{
//		{Key: "M1", Members: []string{"Kevin Bacon", "A"}},
//		{Key: "M2", Members: []string{"A", "B"}},
//	}, "Kevin Bacon")
//	if err != nil { … }
//	ans, _ := orc.AnswerQuery("B")
//	for _, line := range ans.Lines() {
//		fmt.Println(line)
//	}
package costar
