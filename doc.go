// Package taktgrid is a deterministic takt-time scheduling engine for
// construction grids — locations (zones) × wagons (trades) — built on the
// Critical Path Method.
//
// 🚀 What is taktgrid?
//
//	A stateless, pure-Go computation core that:
//		• Builds the zone×trade cell grid and derives its dependency graph
//		  from flow/zone adjacency, honoring per-cell overrides
//		• Validates durations and dependency integrity, rejecting cycles
//		• Computes earliest and latest start/finish via forward and
//		  backward passes, flagging the zero-float critical path
//		• Propagates a delay on one cell by full recomputation
//		• Evaluates Earned Value Management indices (SPI/CPI/EAC/…)
//
// ✨ Why choose taktgrid?
//
//   - Deterministic – identical inputs always produce identical outputs,
//     down to the ordering of every emitted slice
//   - Stateless – every call builds and discards its own state; safe to
//     invoke from any number of goroutines
//   - Pure Go core – the engine itself has no I/O and no dependencies
//   - Tooling included – YAML/HCL plan loaders, canonical fingerprints,
//     and a CLI for quick inspection
//
// Everything is organized under focused subpackages:
//
//	grid/        — cell keys, grid layout, default dependency derivation
//	schedule/    — validation, topological sort, CPM passes, delay, extras
//	evm/         — Earned Value Management formula evaluation
//	taktio/      — plan-file loading (YAML/JSON and HCL)
//	fingerprint/ — canonical CBOR + BLAKE3 result fingerprints
//	cmd/taktgrid — command-line front end
//
// Quick ASCII example (2 zones × 2 trades, flow ↓ and zone → constraints):
//
//	        trade0   trade1
//	zone0   (0,0) → (0,1)
//	          ↓        ↓
//	zone1   (1,0) → (1,1)
//
// Cell (1,1) may start only after both (0,1) and (1,0) finish.
//
// Dive into README.md and each package's doc.go for full examples.
//
//	go get github.com/katalvlaran/taktgrid
package taktgrid
