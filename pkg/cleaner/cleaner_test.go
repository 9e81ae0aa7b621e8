package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dataforge-io/dataprep/pkg/errors"
	"github.com/dataforge-io/dataprep/pkg/table"
)

// sampleTable mirrors the canonical messy dataset: extra whitespace in a
// text column, missing values, and an obvious numeric outlier (age 120).
func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"name", "age", "city"},
		[]map[string]table.Value{
			{"name": table.String(" Alice "), "age": table.Number(25), "city": table.String("SCL")},
			{"name": table.String("Bob"), "age": table.Missing(), "city": table.String("LPZ")},
			{"name": table.Missing(), "age": table.Number(35), "city": table.String("SCL")},
			{"name": table.String(" Carol  "), "age": table.Number(120), "city": table.String("LPZ")},
		},
	)
	require.NoError(t, err)
	return tbl
}

func newCleaner(t *testing.T) *Cleaner {
	t.Helper()
	return New(WithLogger(zaptest.NewLogger(t)))
}

func TestDropInvalidRowsRemovesRowsWithMissingValues(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.DropInvalidRows(tbl, []string{"name", "age"})
	require.NoError(t, err)

	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 0, out.Row(0).Index())

	name, _ := out.Row(0).Value("name")
	s, _ := name.Str()
	assert.Equal(t, " Alice ", s)

	age, _ := out.Row(0).Value("age")
	n, _ := age.Num()
	assert.Equal(t, 25.0, n)

	// checked columns hold no missing values afterwards
	for _, col := range []string{"name", "age"} {
		values, err := out.ColumnValues(col)
		require.NoError(t, err)
		for _, v := range values {
			assert.False(t, v.IsMissing())
		}
	}
}

func TestDropInvalidRowsIgnoresUncheckedColumns(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.DropInvalidRows(tbl, []string{"city"})
	require.NoError(t, err)

	// city is fully populated, nothing drops; other columns untouched
	require.Equal(t, 4, out.NumRows())
	age, _ := out.Row(1).Value("age")
	assert.True(t, age.IsMissing())
}

func TestDropInvalidRowsUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.DropInvalidRows(tbl, []string{"does_not_exist"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
	assert.Contains(t, err.Error(), `column "does_not_exist" does not exist`)
}

func TestDropInvalidRowsRequiresColumns(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	_, err := c.DropInvalidRows(tbl, nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeParameter))
}

func TestDropInvalidRowsDoesNotMutateInput(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	_, err := c.DropInvalidRows(tbl, []string{"name", "age"})
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.NumRows())
	age, _ := tbl.Row(1).Value("age")
	assert.True(t, age.IsMissing())
}

func TestTrimStringsStripsWhitespaceOnly(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.TrimStrings(tbl, []string{"name"})
	require.NoError(t, err)
	require.Equal(t, 4, out.NumRows())

	name, _ := out.Row(0).Value("name")
	s, _ := name.Str()
	assert.Equal(t, "Alice", s)

	name, _ = out.Row(3).Value("name")
	s, _ = name.Str()
	assert.Equal(t, "Carol", s)

	// missing stays missing
	name, _ = out.Row(2).Value("name")
	assert.True(t, name.IsMissing())

	// unrelated columns unchanged
	age, _ := out.Row(0).Value("age")
	n, _ := age.Num()
	assert.Equal(t, 25.0, n)
	city, _ := out.Row(0).Value("city")
	s, _ = city.Str()
	assert.Equal(t, "SCL", s)

	// input untouched
	orig, _ := tbl.Row(0).Value("name")
	s, _ = orig.Str()
	assert.Equal(t, " Alice ", s)
}

func TestTrimStringsKeepsInteriorWhitespace(t *testing.T) {
	tbl, err := table.New(
		[]string{"name"},
		[]map[string]table.Value{
			{"name": table.String("  Mary  Ann\t")},
		},
	)
	require.NoError(t, err)

	out, err := newCleaner(t).TrimStrings(tbl, []string{"name"})
	require.NoError(t, err)

	v, _ := out.Row(0).Value("name")
	s, _ := v.Str()
	assert.Equal(t, "Mary  Ann", s)
}

func TestTrimStringsIsIdempotent(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	once, err := c.TrimStrings(tbl, []string{"name", "city"})
	require.NoError(t, err)
	twice, err := c.TrimStrings(once, []string{"name", "city"})
	require.NoError(t, err)

	for i := 0; i < once.NumRows(); i++ {
		for _, col := range once.Columns() {
			a, _ := once.Row(i).Value(col)
			b, _ := twice.Row(i).Value(col)
			assert.True(t, a.Equal(b), "row %d column %s", i, col)
		}
	}
}

func TestTrimStringsNonTextColumn(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.TrimStrings(tbl, []string{"age"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))
	assert.Contains(t, err.Error(), `"age"`)
}

func TestTrimStringsUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	_, err := c.TrimStrings(tbl, []string{"nickname"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestRemoveOutliersIQRRemovesExtremeValues(t *testing.T) {
	tbl, err := table.New(
		[]string{"age"},
		[]map[string]table.Value{
			{"age": table.Number(25)},
			{"age": table.Number(28)},
			{"age": table.Number(30)},
			{"age": table.Number(32)},
			{"age": table.Number(35)},
			{"age": table.Number(120)},
		},
	)
	require.NoError(t, err)

	out, err := newCleaner(t).RemoveOutliersIQR(tbl, "age", DefaultIQRFactor)
	require.NoError(t, err)

	// Q1=28.5, Q3=34.25, fences [19.875, 42.875]: only 120 falls outside
	require.Equal(t, 5, out.NumRows())
	for i := 0; i < out.NumRows(); i++ {
		assert.Equal(t, i, out.Row(i).Index())
		v, _ := out.Row(i).Value("age")
		n, ok := v.Num()
		require.True(t, ok)
		assert.NotEqual(t, 120.0, n)
	}

	// input untouched
	assert.Equal(t, 6, tbl.NumRows())
}

func TestRemoveOutliersIQRDropsMissingAndKeepsInliers(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	out, err := c.RemoveOutliersIQR(tbl, "age", DefaultIQRFactor)
	require.NoError(t, err)

	// ages {25, 35, 120}: Q1=30, Q3=77.5, fences [-41.25, 148.75] under
	// linear interpolation, so every numeric value survives; only the row
	// with a missing age drops
	indices := make([]int, 0, out.NumRows())
	for i := 0; i < out.NumRows(); i++ {
		indices = append(indices, out.Row(i).Index())
		v, _ := out.Row(i).Value("age")
		assert.False(t, v.IsMissing())
	}
	assert.Equal(t, []int{0, 2, 3}, indices)
}

func TestRemoveOutliersIQRZeroFactorKeepsQuartileRange(t *testing.T) {
	tbl, err := table.New(
		[]string{"v"},
		[]map[string]table.Value{
			{"v": table.Number(1)},
			{"v": table.Number(2)},
			{"v": table.Number(3)},
			{"v": table.Number(4)},
			{"v": table.Number(5)},
		},
	)
	require.NoError(t, err)

	out, err := newCleaner(t).RemoveOutliersIQR(tbl, "v", 0)
	require.NoError(t, err)

	// factor 0 keeps exactly [Q1, Q3] = [2, 4], inclusive
	require.Equal(t, 3, out.NumRows())
	for i, want := range []float64{2, 3, 4} {
		v, _ := out.Row(i).Value("v")
		n, _ := v.Num()
		assert.Equal(t, want, n)
	}
}

func TestRemoveOutliersIQRSingleValueSurvives(t *testing.T) {
	tbl, err := table.New(
		[]string{"v"},
		[]map[string]table.Value{
			{"v": table.Number(7)},
			{"v": table.Missing()},
		},
	)
	require.NoError(t, err)

	out, err := newCleaner(t).RemoveOutliersIQR(tbl, "v", DefaultIQRFactor)
	require.NoError(t, err)

	// degenerate interval [7, 7]: the single value survives, missing drops
	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 0, out.Row(0).Index())
}

func TestRemoveOutliersIQRAllMissingDropsEverything(t *testing.T) {
	tbl, err := table.New(
		[]string{"v"},
		[]map[string]table.Value{
			{"v": table.Missing()},
			{"v": table.Missing()},
		},
	)
	require.NoError(t, err)

	out, err := newCleaner(t).RemoveOutliersIQR(tbl, "v", DefaultIQRFactor)
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumRows())
}

func TestRemoveOutliersIQRUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)

	_, err := newCleaner(t).RemoveOutliersIQR(tbl, "salary", DefaultIQRFactor)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLookup))
}

func TestRemoveOutliersIQRNonNumericColumn(t *testing.T) {
	tbl := sampleTable(t)

	_, err := newCleaner(t).RemoveOutliersIQR(tbl, "name", DefaultIQRFactor)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))
}

func TestRemoveOutliersIQRNegativeFactor(t *testing.T) {
	tbl := sampleTable(t)

	_, err := newCleaner(t).RemoveOutliersIQR(tbl, "age", -1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeParameter))
}

func TestOperationsNeverIncreaseRowCount(t *testing.T) {
	tbl := sampleTable(t)
	c := newCleaner(t)

	dropped, err := c.DropInvalidRows(tbl, []string{"age"})
	require.NoError(t, err)
	assert.LessOrEqual(t, dropped.NumRows(), tbl.NumRows())

	filtered, err := c.RemoveOutliersIQR(tbl, "age", DefaultIQRFactor)
	require.NoError(t, err)
	assert.LessOrEqual(t, filtered.NumRows(), tbl.NumRows())
}

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.75, quantile(values, 0.25), 1e-12)
	assert.InDelta(t, 2.5, quantile(values, 0.5), 1e-12)
	assert.InDelta(t, 3.25, quantile(values, 0.75), 1e-12)
	assert.Equal(t, 1.0, quantile(values, 0))
	assert.Equal(t, 4.0, quantile(values, 1))

	// input order must not matter and must not be disturbed
	shuffled := []float64{4, 1, 3, 2}
	assert.InDelta(t, 1.75, quantile(shuffled, 0.25), 1e-12)
	assert.Equal(t, []float64{4, 1, 3, 2}, shuffled)
}
