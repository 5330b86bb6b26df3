// Package mazebot solves square grid mazes by compacting them into a graph of
// decision points and searching that graph.
//
// 🚀 What is mazebot?
//
//	A small toolkit, from board parsing to a racing client:
//		• grid:     validated N×N boards, components, BFS step oracle, ASCII render
//		• graph:    single-pass compaction into an arena of decision-point nodes
//		• search:   one walker over three frontiers (stack, queue, min-heap)
//		• route:    predecessor chain → N/S/E/W string, and replay back onto the board
//		• solver:   the full pipeline with a three-way error taxonomy
//		• generate: corridors, open rooms, sealed rings and Kruskal mazes
//
// ✨ Why compact first?
//
//   - Corridor cells have exactly one way in and one way out, so only
//     junctions, corners, dead ends and the endpoints become nodes.
//   - A link spans a whole straight run, which keeps the searched graph
//     small on mazes with long passages.
//
// Layout:
//
//	grid/      — board model
//	graph/     — compacted graph + invariant checks
//	search/    — frontier disciplines and Result records
//	route/     — direction encoding and replay
//	solver/    — pipeline entry point
//	generate/  — test and benchmark mazes
//	internal/  — config, logging, race client, checkpoint, racer, HTTP API
//	cmd/mazebot — the command line
//
// Quick ASCII example (S start, E end, X wall, + node):
//
//	S + X
//	X   X
//	X + E
//
// becomes four nodes and three links; the answer is "ESSE".
//
//	go install github.com/katalvlaran/mazebot/cmd/mazebot@latest
package mazebot
