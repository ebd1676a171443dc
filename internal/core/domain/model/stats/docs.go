// Package stats provides the statistics rollups maintained alongside every
// order lifecycle transition.
//
// Three rollups exist:
//   - DailyStatistics: one accumulator row per calendar date, system wide
//   - BusinessStatistics: one accumulator row per (business, date)
//   - DashboardSnapshot: a single live row recomputed from the order table
//
// Accumulator rows are updated through a typed Delta so every field's update
// rule is explicit. A Delta built with NewOrderDelta adds to the order totals
// and monetary accumulators exactly once per order; a Delta built with
// TransitionDelta increments only the counter matching the order's new
// status. Both kinds of Delta are applied inside the same transaction as the
// lifecycle transition itself, so the rollups can never drift from the order
// table.
package stats
