// Package stepflow is an in-memory workbench for directed and
// undirected graphs with a max-flow engine you can single-step —
// pause after every augmenting path, inspect it, resume, or reset.
//
// 🚀 What is stepflow?
//
//	A small, deterministic library that brings together:
//		• Core primitives: vertices, edges, labels — ordered storage, stable iteration
//		• Tagged weights: saturating int32 or finite float32, one kind per graph
//		• Stepwise max-flow: Ford–Fulkerson as a resumable state machine, one augmenting path per call
//		• Text format: line-oriented encode/decode plus the matching command surface (n, +v, -e, lf, sf…)
//		• A REPL: cmd/stepflow drives the whole stack from stdin
//
// ✨ Why choose stepflow?
//
//   - Observable – every augmenting path is a value you can print and diff
//   - Deterministic – ordered adjacency, stable search order, equal graphs encode to equal text
//   - Honest errors – a sentinel for every rule, argument positions included
//   - Hands off your data – Step works on private snapshots, never the input graph
//
// Under the hood, everything is organized under four subpackages:
//
//	weight/    — the Int32/Float32 weight union: parsing, formatting, saturating math
//	core/      — Graph, Vertex, Edge: ordered adjacency storage and the mutation rules
//	flow/      — the resumable Ford–Fulkerson machine: Step, Run, State, Data
//	graphtext/ — the text codec, graph files and the Session command surface
//
// Quick ASCII example:
//
//	    s ──3──► a ──2──► t
//	    │        │        ▲
//	    2        1        3
//	    │        ▼        │
//	    └──────► b ───────┘
//
//	a classic five-edge network: its maximum s→t flow is 5, reached in
//	three augmenting paths — watch each one land with flow.Step.
//
//	go get github.com/katalvlaran/stepflow
package stepflow
