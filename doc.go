// Package wealth provides the types and derivation engine for tracking a
// personal wealth journal. It is designed to be local-first, auditable, and
// rebuilt from scratch on every run, so nothing derived is ever persisted
// and the event journal stays the single source of truth.
//
// The core functionalities include:
//   - Event Journal: Recording life and money events (birthday, salaries,
//     asset openings and closings, transactions, valuations, and goals) in a
//     human-readable JSONL file whose line order carries no meaning.
//   - Asset Reconstruction: Rebuilding each asset's daily value series and
//     splitting its growth between what was paid in and what the asset
//     earned by itself.
//   - Aggregation: Grouping assets by type and into a net series restricted
//     to the assets that count toward net worth.
//   - Wealth Index: A daily age- and salary-relative measure of net worth,
//     with goal lines projecting where it should be at a given age.
//   - Yearly Review: Per-year and per-month rollups with growth
//     decomposition and progress against declared year goals.
//   - Money Lifetime: A month-by-month simulation of how long the current
//     net worth would sustain a salary-indexed spending level.
//
// This package serves as the foundational logic for the `wts` command-line
// tool, ensuring that all reports are consistent and derived from a single
// source of truth.
package wealth
