// Package dataprep provides a small data-quality and numeric-transformation
// toolkit for preparing raw in-memory data for downstream analysis.
//
// It carries two independent, side-effect-free components:
//
//   - pkg/cleaner: row- and cell-level cleaning of a tabular dataset
//     (pkg/table) — dropping rows with missing values, trimming whitespace
//     in text columns, and removing statistical outliers with Tukey's
//     interquartile-range rule.
//
//   - pkg/stats: pure numeric transformations on flat float64 sequences —
//     sliding-window average, z-score standardization, and min-max scaling
//     to [0, 1].
//
// Neither component depends on the other. Both consume a caller-supplied
// table or sequence and return a new, independent result; inputs are never
// mutated, and no state survives between calls. Loading, persistence, and
// presentation of the data are the caller's concern.
//
// # Quick Start
//
// Clean a table and standardize a column:
//
//	import (
//	    "github.com/dataforge-io/dataprep/pkg/cleaner"
//	    "github.com/dataforge-io/dataprep/pkg/stats"
//	    "github.com/dataforge-io/dataprep/pkg/table"
//	)
//
//	t, err := table.New(
//	    []string{"name", "age"},
//	    []map[string]table.Value{
//	        {"name": table.String(" Alice "), "age": table.Number(25)},
//	        {"name": table.String("Bob"), "age": table.Missing()},
//	    },
//	)
//	if err != nil {
//	    return err
//	}
//
//	c := cleaner.New()
//	t, err = c.DropInvalidRows(t, []string{"name", "age"})
//	if err != nil {
//	    return err
//	}
//	t, err = c.TrimStrings(t, []string{"name"})
//	if err != nil {
//	    return err
//	}
//
//	scaled, err := stats.MinMaxScale([]float64{2, 4, 6})
//
// # Error Handling
//
// Failures are surfaced through pkg/errors as typed categories — lookup,
// type_mismatch, parameter, degenerate — checked eagerly before any output
// is produced. An operation either fully succeeds or returns nothing,
// leaving the input untouched.
package dataprep
