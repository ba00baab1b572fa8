// Package main provides the tessellate CLI tool.
//
// # Overview
//
// Tessellate solves edge-matching square-tile puzzles in the Eternity-II
// family: given a set of square tiles with colored edges (one of which may
// be a border color), place every tile at a distinct board cell and rotation
// so that every adjacent pair of edges matches and every border-facing edge
// shows the border color.
//
// The solver runs a backtracking constraint-satisfaction search over cell
// domains maintained by arc-consistency propagation (AC-3 style), using
// minimum-remaining-values cell selection and least-constraining-value
// ordering, with singleton detection to short-circuit forced moves and
// symmetry breaking to avoid exploring equivalent board rotations. Runs can
// be split across worker goroutines with diversified starting corners, and
// checkpointed to disk so a long search can be resumed later.
//
// # Installation & Building
//
//	go build
//	./tessellate --help
//
// # Commands
//
// ## solve
//
// Solve a puzzle definition file from scratch.
//
// Parses the puzzle's tile list and fixed-piece placements, runs a feasibility
// precheck (edge-color parity, border-edge budget), and launches a worker
// pool over the backtracking engine. Writes a checkpoint at the end and
// records the result in the run ledger.
//
// Examples:
//
//	tessellate solve --puzzle eternity2_p01
//	tessellate solve --puzzle eternity2_p01 --threads 4 --parallel
//	tessellate solve --puzzle eternity2_p01 --timeout 1800 --no-singletons
//
// ## resume
//
// Resume a puzzle from its last saved checkpoint, retrying via the
// historical backtracker if the restored state is itself a dead end.
//
// Examples:
//
//	tessellate resume --puzzle eternity2_p01
//	tessellate resume --puzzle eternity2_p01 --timeout 900
//
// ## batch
//
// Solve every puzzle file in a directory, falling back across ordering
// strategies (mrv-lcv, mrv-ascending, mrv-descending) file by file.
//
// Examples:
//
//	tessellate batch --dir puzzles
//	tessellate batch --dir puzzles --threads 4 --timeout 10m
//
// ## validate
//
// Validate puzzle definition files: grammar parsing plus the edge-parity
// feasibility precheck, with results written to a JSON stats file.
//
// Examples:
//
//	tessellate validate
//	tessellate validate --dir puzzles --verbose
//
// ## render
//
// Render a puzzle file's fixed pieces, or its in-progress checkpoint, as an
// ANSI grid with mismatched edges highlighted.
//
// Examples:
//
//	tessellate render --file puzzles/eternity2_p01.txt
//	tessellate render --file puzzles/eternity2_p01.txt --checkpoint
//
// ## checkpoint
//
// List, inspect, or remove on-disk checkpoints.
//
// Examples:
//
//	tessellate checkpoint list
//	tessellate checkpoint inspect eternity2_p01
//	tessellate checkpoint clean eternity2_p01
//
// ## clean
//
// Remove checkpoint files, optionally scoped to one puzzle.
//
// Examples:
//
//	tessellate clean
//	tessellate clean --puzzle eternity2_p01
//
// ## stats
//
// Report historical best results (solved state, depth, score) per puzzle
// from the run ledger, independent of any on-disk checkpoint.
//
// Examples:
//
//	tessellate stats
//	tessellate stats --puzzle eternity2_p01
//
// ## watch
//
// Show a live terminal dashboard of a search's shared state: global best
// depth and score, redrawn on a ticker. Press q or Ctrl-C to exit.
//
// Examples:
//
//	tessellate watch --interval 500ms
//
// # Architecture
//
//	cmd/              - Cobra command implementations, one package per command
//	pkg/
//	  common/        - Paths, logging, atomic file writes
//	  model/         - Tile, Board, PuzzleDefinition, Checkpoint data types
//	  tilefile/      - Puzzle text-file grammar parser
//	  puzzlecfg/     - Java-properties-style fixed-piece-count overrides
//	  solver/        - Domain manager, AC-3 propagator, value orderers,
//	                   backtracking engine, parallel coordinator, checkpoint
//	                   codec, feasibility precheck, strategy registry
//	  batch/         - Sequential multi-file solve with strategy fallback
//	  validator/     - Structural + feasibility validation across a directory
//	  render/        - ANSI board rendering
//	  history/       - Embedded run ledger (best result per puzzle)
//	  ui/            - Terminal spinner for long-running operations
//
// # Puzzle file grammar
//
// A puzzle file is a sequence of directive lines and tile lines:
//
//	# Dimensions: 16x16
//	# SortOrder: descending
//	# PieceFixePosition: 1 0 0 0
//	1 0 12 34 0
//	2 12 0 56 0
//	...
//
// Each tile line is "id north east south west", with 0 reserved for the
// border color. See pkg/tilefile for the full grammar.
//
// # Configuration
//
// ## Global flags (available for all commands)
//
//	-v, --verbose              Enable verbose output for debugging
//	-j, --workers string       Worker count (integer, 'half', or 'full'); parsed and
//	                           logged only, subcommands take --threads
//	-w, --working-dir string   Working directory for puzzle/checkpoint paths
//
// Per-puzzle fixed-piece overrides can be supplied via a properties file
// (--config on solve), matched by longest puzzle-name prefix against
// puzzle.<name>.fixedPieces entries, falling back to puzzle.default.fixedPieces.
package main
