// Package aceso computes gravity-based measures of potential spatial
// accessibility — how well demand locations (population centers) can reach
// supply locations (clinics, services) across a travel-cost matrix.
//
// 🚀 What is aceso?
//
//	A small, pure in-memory library that brings together:
//		• Distance-decay kernels: uniform, raised cosine, gaussian, parabolic
//		• Custom decay functions: bind your own kernel + parameters
//		• Piecewise (banded) decay for multi-step catchments
//		• Gravity model: the canonical two-pass provider-to-population aggregation
//		• 2SFCA: Two-Step Floating Catchment Area
//		• 3SFCA / MSFCA: banded multi-step catchments
//		• Huff-style demand normalization and M2SFCA suboptimality exponents
//
// ✨ Why choose aceso?
//
//   - Minimal API – one model type, one scoring call, decay as configuration
//   - Deterministic – no global state, no randomness, safe for concurrent use
//   - Strict validation – sentinel errors, no NaN/Inf ever leaks into scores
//
// Everything is organized under two subpackages:
//
//	decay/   — decay kernels, the name resolver, custom binding, bands
//	gravity/ — the gravity model and its floating-catchment specializations
//
// Quick sketch:
//
//	demand i ──d(i,j)──▶ supply j        step A: ratio_j = supply_j / Σ_i demand_i·w(d_ij)
//	score_i = Σ_j ratio_j · w(d_ij)      step B: gather ratios back onto demand
//
// The distance matrix itself is an input: compute it with your routing engine
// or great-circle provider of choice and feed it in as a gonum mat.Matrix.
//
//	go get github.com/tetraptych/aceso/gravity
package aceso
