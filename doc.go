// Package swr provides the data plumbing around a safe withdrawal rate simulator: it
// prepares the monthly series the simulator reads, queries the simulator for grids of
// scenarios, and arranges the answers for comparison.
//
// The core functionalities include:
//   - Column extraction: pulling one named column out of spreadsheet exports, with their
//     metadata rows and locale specific number formats, into the simulator's
//     "month,year,value" series format (Extractor, DecimalConvention).
//   - Series analysis: loading monthly series and computing their month over month
//     changes and statistics (Series, Changes, Summarize).
//   - Simulation queries: describing portfolios and simulation parameters, decoding the
//     simulator's answers (Portfolio, Query, Results).
//   - Balancing analysis: running grids of simulations that compare rebalancing
//     strategies and allocations over many start years (Grid, BalanceReport).
//
// This package serves as the foundational logic for the `swa` command-line tool.
package swr
