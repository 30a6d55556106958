// Package insights computes the derived values the dashboard displays:
// filtered and sorted transaction lists, spending by category, portfolio
// allocation and savings progress. Every function is pure and safe to call
// on each render; empty inputs and zero denominators yield zero values.
package insights
