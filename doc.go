// Package izar is your in-memory toolkit for turning raw Bayesian-inference
// samples into labeled, self-describing datasets — and for laying out
// model-comparison summaries ready for any plotting backend.
//
// 🚀 What is izar?
//
//	A small, deterministic library that brings together:
//		• ndarray: dense row-major n-dimensional arrays with safe accessors
//		• dataset: dimension/coordinate inference over the (chain, draw, …) convention
//		• dataset: assembly of named variables into one attribute-tagged Dataset
//		• compare: information-criterion ranking plots as backend-agnostic geometry
//
// ✨ Why choose izar?
//
//   - Predictable – inputs are deep-copied before mutation, no global state
//   - Honest about bad shapes – suspicious inputs warn, broken inputs error
//   - Pure Go – no cgo, no hidden deps
//   - Interoperable – the chain/draw labeling convention matches the wider
//     inference-diagnostics ecosystem exactly
//
// Under the hood, everything is organized under three subpackages:
//
//	ndarray/ — Dense n-dimensional storage, Shape, strides, AtLeast2D
//	dataset/ — InferDimsCoords, NewDataArray, Assemble, MakeAttrs, InferenceData
//	compare/ — comparison Table and BuildPlotModel (ranking plot layout)
//
// Quick ASCII example:
//
//	    raw (4×100×8) ──labels──▶ dims: chain, draw, theta_dim_0
//	                              coords: 0..3, 0..99, 0..7
//
// Dive into each package's doc.go and example tests for usage patterns.
//
//	go get github.com/katalvlaran/izar
package izar
