// Package shockgraph models an economy as a directed acyclic graph of
// quantitative variables and simulates how disturbances ("shocks")
// propagate through the causal network over discrete time periods.
//
// 🚀 What is shockgraph?
//
//	A small, deterministic library that brings together:
//		• Causal graphs: named economic variables, quantified causal edges,
//		  cycle-safe mutation and structural queries
//		• Mechanisms: linear, exponential, threshold and saturation
//		  transforms standing in for plain linear cause→effect links
//		• Shock propagation: multi-period simulation with per-edge time
//		  lags, global dampening, bounds clamping and convergence detection
//
// ✨ Why choose shockgraph?
//
//   - Deterministic – identical inputs always reproduce identical series
//   - Rock-solid guarantees – the graph is acyclic by construction,
//     failed mutations leave no trace
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the engine holds a reference to a read-only graph;
//     independent scenarios may run in parallel on separate engines
//
// Everything is organized under three subpackages:
//
//	causal/    — EconomicVariable, CausalRelationship and the CausalGraph DAG
//	mechanism/ — non-linear causal mechanisms + EnhancedRelationship
//	shock/     — ShockEvent, the propagation Engine and PropagationResults
//
// Quick ASCII example:
//
//	    oil_price ──▶ inflation ──▶ interest_rate
//	         │                            │
//	         └────────▶ gdp_growth ◀──────┘
//
//	a four-variable economy with one lagged policy feedback edge.
//
// Dive into the per-package docs for full examples and the propagation
// algorithm walkthrough.
//
//	go get github.com/ecodyn/shockgraph
package shockgraph
