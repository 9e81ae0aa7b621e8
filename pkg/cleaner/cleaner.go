// Package cleaner provides row- and cell-level cleaning operations on a
// tabular dataset: dropping rows with missing values, trimming whitespace in
// text columns, and removing statistical outliers with Tukey's IQR rule.
//
// All operations are pure: they validate their preconditions eagerly, never
// touch the input table, and return a new, independent table. Failures are
// surfaced as typed errors (lookup, type_mismatch, parameter) before any
// output is produced.
package cleaner

import (
	"go.uber.org/zap"

	"github.com/dataforge-io/dataprep/pkg/errors"
	"github.com/dataforge-io/dataprep/pkg/logger"
	"github.com/dataforge-io/dataprep/pkg/metrics"
	stringpool "github.com/dataforge-io/dataprep/pkg/strings"
	"github.com/dataforge-io/dataprep/pkg/table"
)

// DefaultIQRFactor is the conventional Tukey multiplier for the IQR rule
const DefaultIQRFactor = 1.5

const (
	opDropInvalidRows = "drop_invalid_rows"
	opTrimStrings     = "trim_strings"
	opRemoveOutliers  = "remove_outliers_iqr"
)

// Cleaner performs cleaning operations on tables. It carries only a logger
// and a metrics collector; no state survives between calls.
type Cleaner struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

// Option configures a Cleaner
type Option func(*Cleaner)

// WithLogger sets the logger used for operation-level debug logging
func WithLogger(l *zap.Logger) Option {
	return func(c *Cleaner) {
		c.logger = l
	}
}

// New creates a Cleaner. Without options it logs through the global logger.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		logger:  logger.Get(),
		metrics: metrics.NewCollector("cleaner"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DropInvalidRows returns a new table retaining exactly the rows in which
// every named column holds a non-missing value. Unchecked columns do not
// affect the decision but are returned unchanged for retained rows. Row
// order and original positional indices are preserved.
//
// Every named column must exist; a lookup error naming the first missing
// column is returned before any filtering occurs.
func (c *Cleaner) DropInvalidRows(t *table.Table, columns []string) (*table.Table, error) {
	op := opDropInvalidRows
	timer := c.metrics.NewTimer(op)
	defer timer.Stop()

	if err := c.checkTable(op, t); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, c.fail(op, errors.New(errors.ErrorTypeParameter,
			"at least one column must be specified"))
	}
	if err := c.checkColumns(op, t, columns); err != nil {
		return nil, err
	}

	out := t.Filter(func(row table.Row) bool {
		for _, col := range columns {
			v, _ := row.Value(col)
			if v.IsMissing() {
				return false
			}
		}
		return true
	})

	dropped := t.NumRows() - out.NumRows()
	c.metrics.RecordRows(op, t.NumRows(), dropped)
	c.logger.Debug("dropped rows with missing values",
		zap.Strings("columns", columns),
		zap.Int("rows_in", t.NumRows()),
		zap.Int("rows_dropped", dropped))

	return out, nil
}

// TrimStrings returns a new table with leading and trailing whitespace
// removed from every non-missing value of the named columns. Interior
// whitespace, missing values, and all other columns are untouched.
//
// Every named column must exist (lookup error) and its non-missing values
// must all be textual (type_mismatch error naming the offending column);
// both checks run before any output is produced.
func (c *Cleaner) TrimStrings(t *table.Table, columns []string) (*table.Table, error) {
	op := opTrimStrings
	timer := c.metrics.NewTimer(op)
	defer timer.Stop()

	if err := c.checkTable(op, t); err != nil {
		return nil, err
	}
	if err := c.checkColumns(op, t, columns); err != nil {
		return nil, err
	}
	for _, col := range columns {
		if err := c.checkDomain(op, t, col, table.DomainText); err != nil {
			return nil, err
		}
	}

	out := t
	trimmed := 0
	for _, col := range columns {
		var err error
		out, err = out.MapColumn(col, func(v table.Value) table.Value {
			s, ok := v.Str()
			if !ok {
				return v
			}
			clean := stringpool.TrimSpace(s)
			if clean != s {
				trimmed++
			}
			return table.String(clean)
		})
		if err != nil {
			// Columns were verified above; a failure here is a bug.
			return nil, c.fail(op, errors.Wrap(err, errors.ErrorTypeInternal,
				"column disappeared during trim"))
		}
	}

	c.metrics.RecordCells(op, trimmed)
	c.logger.Debug("trimmed string columns",
		zap.Strings("columns", columns),
		zap.Int("cells_rewritten", trimmed))

	return out, nil
}

// RemoveOutliersIQR returns a new table without the rows whose value in the
// named numeric column falls outside [Q1 - factor*IQR, Q3 + factor*IQR],
// where Q1 and Q3 are the 25th and 75th percentiles of the column's
// non-missing values (linear interpolation between closest ranks) and
// IQR = Q3 - Q1. The interval is inclusive at both ends. Rows with a
// missing value in the column are dropped: they cannot be classified as
// non-outlying. Row order and original indices are preserved.
//
// The column must exist (lookup error) and hold only numeric non-missing
// values (type_mismatch error); factor must be non-negative (parameter
// error). With fewer than two non-missing values the interval degenerates
// to the quartiles themselves.
func (c *Cleaner) RemoveOutliersIQR(t *table.Table, column string, factor float64) (*table.Table, error) {
	op := opRemoveOutliers
	timer := c.metrics.NewTimer(op)
	defer timer.Stop()

	if err := c.checkTable(op, t); err != nil {
		return nil, err
	}
	if factor < 0 {
		return nil, c.fail(op, errors.Newf(errors.ErrorTypeParameter,
			"factor must be non-negative, got %v", factor))
	}
	if err := c.checkColumns(op, t, []string{column}); err != nil {
		return nil, err
	}
	if err := c.checkDomain(op, t, column, table.DomainNumeric); err != nil {
		return nil, err
	}

	values, err := t.ColumnValues(column)
	if err != nil {
		return nil, c.fail(op, err)
	}

	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if n, ok := v.Num(); ok {
			nums = append(nums, n)
		}
	}

	// An all-missing column leaves nothing classifiable: every row drops.
	if len(nums) == 0 {
		out := t.Filter(func(table.Row) bool { return false })
		c.metrics.RecordRows(op, t.NumRows(), t.NumRows())
		return out, nil
	}

	q1 := quantile(nums, 0.25)
	q3 := quantile(nums, 0.75)
	iqr := q3 - q1
	lo := q1 - factor*iqr
	hi := q3 + factor*iqr

	out := t.Filter(func(row table.Row) bool {
		v, _ := row.Value(column)
		n, ok := v.Num()
		if !ok {
			return false
		}
		return n >= lo && n <= hi
	})

	dropped := t.NumRows() - out.NumRows()
	c.metrics.RecordRows(op, t.NumRows(), dropped)
	c.logger.Debug("removed outlier rows",
		zap.String("column", column),
		zap.Float64("q1", q1),
		zap.Float64("q3", q3),
		zap.Float64("factor", factor),
		zap.Int("rows_dropped", dropped))

	return out, nil
}

// checkTable rejects a nil table before any work happens
func (c *Cleaner) checkTable(op string, t *table.Table) error {
	if t == nil {
		return c.fail(op, errors.New(errors.ErrorTypeParameter, "table must not be nil"))
	}
	return nil
}

// checkColumns verifies every named column exists, failing on the first
// absent one
func (c *Cleaner) checkColumns(op string, t *table.Table, columns []string) error {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return c.fail(op, errors.Newf(errors.ErrorTypeLookup,
				"column %q does not exist", col).
				WithDetail("column", col))
		}
	}
	return nil
}

// checkDomain verifies the column's inferred domain matches what the
// operation requires. An all-missing column passes: there are no values to
// conflict with the requirement.
func (c *Cleaner) checkDomain(op string, t *table.Table, column string, want table.Domain) error {
	got, err := t.Domain(column)
	if err != nil {
		return c.fail(op, err)
	}
	if got == table.DomainEmpty || got == want {
		return nil
	}
	return c.fail(op, errors.Newf(errors.ErrorTypeTypeMismatch,
		"column %q holds %s values, %s required", column, got, want).
		WithDetail("column", column).
		WithDetail("domain", got.String()))
}

// fail records the error in metrics and returns it unchanged
func (c *Cleaner) fail(op string, err error) error {
	c.metrics.RecordError(op, string(errors.TypeOf(err)))
	return err
}
