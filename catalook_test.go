package catalook

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbitlee/catalook/catalog"
	"github.com/hanbitlee/catalook/engine"
)

func testRows() []catalog.Row {
	return []catalog.Row{
		{catalog.ColBarcode: "8801234567890", catalog.ColName: "진라면 120g", catalog.ColUnitPrice: "450"},
		{catalog.ColBarcode: "8809876543210", catalog.ColName: "신라면 컵", catalog.ColUnitPrice: "1200"},
	}
}

func loadedSession(t *testing.T, optFns ...Option) *Session {
	t.Helper()
	s := New(optFns...)
	_, err := s.Load(context.Background(), testRows())
	require.NoError(t, err)
	return s
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("SearchBeforeLoad", func(t *testing.T) {
		s := New()
		assert.False(t, s.Loaded())

		_, err := s.Search(ctx, Query{Mode: engine.ModeBarcode, Text: "880"})
		assert.ErrorIs(t, err, ErrNoCatalogLoaded)

		_, err = s.List()
		assert.ErrorIs(t, err, ErrNoCatalogLoaded)

		// Rejected queries record no history.
		assert.Empty(t, s.History())
	})

	t.Run("BarcodeScenario", func(t *testing.T) {
		s := loadedSession(t)

		res, err := s.Search(ctx, Query{Mode: engine.ModeBarcode, Text: "8801-2345-67890"})
		require.NoError(t, err)
		require.Equal(t, 1, res.Len())
		assert.Equal(t, engine.TierExact, res.Tier)
		assert.Equal(t, "진라면 120g", res.Records[0].Name)
	})

	t.Run("NameScenario", func(t *testing.T) {
		s := loadedSession(t)

		res, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Len())
	})

	t.Run("UnknownMode", func(t *testing.T) {
		s := loadedSession(t)

		_, err := s.Search(ctx, Query{Mode: engine.Mode(42), Text: "x"})
		assert.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("HistoryRecording", func(t *testing.T) {
		s := loadedSession(t)

		_, err := s.Search(ctx, Query{Mode: engine.ModeBarcode, Text: "8801234567890"})
		require.NoError(t, err)
		_, err = s.Search(ctx, Query{Mode: engine.ModeName, Text: "없는제품"})
		require.NoError(t, err)

		// Validation failure: no entry.
		_, err = s.Search(ctx, Query{Mode: engine.ModeName, Text: "a"})
		require.Error(t, err)

		entries := s.History()
		require.Len(t, entries, 2)

		// Newest first.
		assert.Equal(t, engine.ModeName, entries[0].Mode)
		assert.Equal(t, 0, entries[0].MatchCount)
		assert.Equal(t, "", entries[0].RepresentativeName)

		assert.Equal(t, engine.ModeBarcode, entries[1].Mode)
		assert.Equal(t, 1, entries[1].MatchCount)
		assert.Equal(t, "진라면 120g", entries[1].RepresentativeName)
	})

	t.Run("Repeat", func(t *testing.T) {
		s := loadedSession(t)

		_, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
		require.NoError(t, err)

		res, err := s.Repeat(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Len())

		// Repeating produced a new entry, not an edit.
		entries := s.History()
		require.Len(t, entries, 2)
		assert.Equal(t, entries[0].RawQuery, entries[1].RawQuery)

		_, err = s.Repeat(ctx, 99)
		assert.ErrorIs(t, err, ErrNoSuchEntry)
	})

	t.Run("ClearHistory", func(t *testing.T) {
		s := loadedSession(t)

		_, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
		require.NoError(t, err)
		s.ClearHistory()
		assert.Empty(t, s.History())
	})

	t.Run("LastResult", func(t *testing.T) {
		s := loadedSession(t)

		_, ok := s.LastResult()
		assert.False(t, ok)

		_, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
		require.NoError(t, err)

		last, ok := s.LastResult()
		require.True(t, ok)
		assert.Equal(t, 2, last.Len())

		// A failed search leaves the last result untouched.
		_, err = s.Search(ctx, Query{Mode: engine.ModeName, Text: "a"})
		require.Error(t, err)
		last, ok = s.LastResult()
		require.True(t, ok)
		assert.Equal(t, 2, last.Len())
	})

	t.Run("ListRoundTrip", func(t *testing.T) {
		s := loadedSession(t)

		res, err := s.List()
		require.NoError(t, err)
		require.Equal(t, 2, res.Len())
		assert.Equal(t, "진라면 120g", res.Records[0].Name)
		assert.Equal(t, "신라면 컵", res.Records[1].Name)
	})

	t.Run("ReloadReplacesWholesale", func(t *testing.T) {
		s := loadedSession(t)

		_, err := s.Load(ctx, []catalog.Row{
			{catalog.ColBarcode: "111", catalog.ColName: "새제품"},
		})
		require.NoError(t, err)

		res, err := s.List()
		require.NoError(t, err)
		require.Equal(t, 1, res.Len())
		assert.Equal(t, "새제품", res.Records[0].Name)
	})

	t.Run("ConcurrentSearchDuringReload", func(t *testing.T) {
		s := loadedSession(t)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					res, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
					assert.NoError(t, err)
					// Old index in full (2 hits) or new index in full
					// (1 hit), never a mix.
					n := res.Len()
					assert.True(t, n == 1 || n == 2, "got %d matches", n)
				}
			}()
		}
		for i := 0; i < 20; i++ {
			_, err := s.Load(ctx, []catalog.Row{
				{catalog.ColName: "라면 하나뿐"},
			})
			require.NoError(t, err)
			_, err = s.Load(ctx, testRows())
			require.NoError(t, err)
		}
		wg.Wait()
	})

	t.Run("LoadReportsMalformedRows", func(t *testing.T) {
		s := New()
		report, err := s.Load(ctx, []catalog.Row{
			{catalog.ColName: "가", catalog.ColUnitPrice: "not-a-number"},
			{catalog.ColName: "나", catalog.ColUnitPrice: "100"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, report.Rows)
		assert.Len(t, report.Malformed, 1)
		assert.True(t, s.Loaded())
	})
}

func TestSessionScan(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolveAndSearch", func(t *testing.T) {
		s := loadedSession(t)

		res, barcode, ok, err := s.SearchScan(ctx, []string{"noise", "8801-2345-67890"}, "camera")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "8801234567890", barcode)
		require.Equal(t, 1, res.Len())

		entries := s.History()
		require.Len(t, entries, 1)
		assert.Equal(t, "camera", entries[0].Origin)
	})

	t.Run("NothingRecognized", func(t *testing.T) {
		s := loadedSession(t)

		_, _, ok, err := s.SearchScan(ctx, []string{"abc", "--"}, "camera")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, s.History())
	})

	t.Run("RecentScansNewestFirst", func(t *testing.T) {
		s := loadedSession(t)

		s.ResolveScan(ctx, []string{"111"})
		s.ResolveScan(ctx, []string{"222"})
		s.ResolveScan(ctx, []string{"zz"}) // unrecognized, not buffered

		assert.Equal(t, []string{"222", "111"}, s.RecentScans())
	})
}

func TestSessionOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("HistoryCapacity", func(t *testing.T) {
		s := loadedSession(t, WithHistoryCapacity(2))
		for i := 0; i < 5; i++ {
			_, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
			require.NoError(t, err)
		}
		assert.Len(t, s.History(), 2)
	})

	t.Run("Synonyms", func(t *testing.T) {
		s := New(WithSynonyms(map[string]string{"ITEM": catalog.ColName}))
		_, err := s.Load(ctx, []catalog.Row{{"ITEM": "커피"}})
		require.NoError(t, err)

		res, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "커피"})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Len())
	})

	t.Run("BasicMetrics", func(t *testing.T) {
		var m BasicMetricsCollector
		s := loadedSession(t, WithMetrics(&m))

		_, err := s.Search(ctx, Query{Mode: engine.ModeName, Text: "라면"})
		require.NoError(t, err)
		_, err = s.Search(ctx, Query{Mode: engine.ModeName, Text: "a"})
		require.Error(t, err)
		s.ResolveScan(ctx, []string{"zz"})

		assert.Equal(t, int64(2), m.SearchCount.Load())
		assert.Equal(t, int64(1), m.SearchErrors.Load())
		assert.Equal(t, int64(2), m.SearchMatches.Load())
		assert.Equal(t, int64(1), m.ResolveMisses.Load())
	})
}
