package catalook_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hanbitlee/catalook"
	"github.com/hanbitlee/catalook/catalog"
	"github.com/hanbitlee/catalook/engine"
)

func exampleRows() []catalog.Row {
	return []catalog.Row{
		{"바코드": "8801234567890", "제품명": "서울우유 1L", "출고가": "1,350", "입수": "12", "보관조건": "냉장"},
		{"바코드": "8809876543210", "제품명": "바나나맛 우유 240ml", "출고가": "800", "입수": "24", "보관조건": "냉장"},
		{"바코드": "8800000045678", "제품명": "초코파이", "출고가": "3,200", "입수": "8", "보관조건": "실온"},
	}
}

// Example demonstrates loading a catalog and searching it by barcode.
// Hyphens and whitespace in the query are scanner noise and ignored.
func Example() {
	ctx := context.Background()

	s := catalook.New(catalook.WithLogger(catalook.NoopLogger()))
	if _, err := s.Load(ctx, exampleRows()); err != nil {
		log.Fatal(err)
	}

	res, err := s.Search(ctx, catalook.Query{
		Mode: engine.ModeBarcode,
		Text: "8801-2345-67890",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%s match)\n", res.Records[0].Name, res.Tier)
	// Output: 서울우유 1L (exact match)
}

// Example_nameSearch demonstrates substring name matching: spacing and case
// differences in the query do not matter.
func Example_nameSearch() {
	ctx := context.Background()

	s := catalook.New(catalook.WithLogger(catalook.NoopLogger()))
	if _, err := s.Load(ctx, exampleRows()); err != nil {
		log.Fatal(err)
	}

	res, err := s.Search(ctx, catalook.Query{
		Mode: engine.ModeName,
		Text: "바나나맛우유",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range res.Records {
		fmt.Println(r.Name)
	}
	// Output: 바나나맛 우유 240ml
}

// Example_filters demonstrates narrowing a listing by storage condition and
// ordering it by price.
func Example_filters() {
	ctx := context.Background()

	s := catalook.New(catalook.WithLogger(catalook.NoopLogger()))
	if _, err := s.Load(ctx, exampleRows()); err != nil {
		log.Fatal(err)
	}

	res, err := s.List(func(o *engine.SearchOptions) {
		o.Filters = &engine.Filters{Storage: []string{"냉장"}}
		o.Sort = engine.SortPriceAsc
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range res.Records {
		fmt.Println(r.Name)
	}
	// Output:
	// 바나나맛 우유 240ml
	// 서울우유 1L
}

// Example_scan demonstrates reducing noisy scanner candidates to one barcode
// and looking it up in a single call.
func Example_scan() {
	ctx := context.Background()

	s := catalook.New(catalook.WithLogger(catalook.NoopLogger()))
	if _, err := s.Load(ctx, exampleRows()); err != nil {
		log.Fatal(err)
	}

	candidates := []string{"QR:ABC", "88", "8809876543210"}
	res, barcode, ok, err := s.SearchScan(ctx, candidates, "camera")
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Println("no barcode recognized")
		return
	}

	fmt.Printf("%s -> %s\n", barcode, res.Records[0].Name)
	// Output: 8809876543210 -> 바나나맛 우유 240ml
}

// Example_history demonstrates the query ledger and re-running an entry.
func Example_history() {
	ctx := context.Background()

	s := catalook.New(catalook.WithLogger(catalook.NoopLogger()))
	if _, err := s.Load(ctx, exampleRows()); err != nil {
		log.Fatal(err)
	}

	s.Search(ctx, catalook.Query{Mode: engine.ModeName, Text: "우유"})
	s.Search(ctx, catalook.Query{Mode: engine.ModeBarcode, Text: "8800000045678"})

	for _, e := range s.History() {
		fmt.Printf("%s %q -> %d\n", e.Mode, e.RawQuery, e.MatchCount)
	}

	// Repeat the newest entry; it becomes a fresh entry of its own.
	if _, err := s.Repeat(ctx, 0); err != nil {
		log.Fatal(err)
	}
	fmt.Println("entries:", len(s.History()))
	// Output:
	// barcode "8800000045678" -> 1
	// name "우유" -> 2
	// entries: 3
}
