// Package gravity computes gravity-based measures of potential spatial
// accessibility from a demand×supply travel-cost matrix.
//
// The gravity package provides:
//
//   - Model, the canonical two-pass provider-to-population aggregation:
//     step A distributes each supply location's capacity over the
//     decay-weighted demand that can reach it; step B gathers the resulting
//     ratios back onto each demand location.
//   - NewTwoStepFCA, the classic Two-Step Floating Catchment Area model
//     (uniform decay inside a single catchment radius).
//   - NewThreeStepFCA, the banded multi-step generalization (3SFCA/MSFCA)
//     built on a piecewise decay kernel over concentric radii.
//   - Optional Huff-style demand normalization and an M2SFCA suboptimality
//     exponent, configured through Options.
//
// A Model is pure configuration: construct it once, then call
// AccessibilityScores from as many goroutines as you like. Inputs are never
// mutated and no state is retained between calls.
//
// References:
//
//	Luo, W. and Wang, F. (2003) Measures of spatial accessibility to health
//	care in a GIS environment. Environment and Planning B 30, 865–884.
//
//	Luo, W. and Qi, Y. (2009) An enhanced two-step floating catchment area
//	(E2SFCA) method. Health and Place 15, 1100–1107.
//
//	Wan, N., Zou, B. and Sternberg, T. (2012) A 3-step floating catchment
//	area method for analyzing spatial access to health services. IJGIS 26,
//	1073–1089.
package gravity
