package catalog

import (
	"reflect"
	"testing"

	"github.com/insiderdeals/storefront/internal/domain"
)

func sample() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Wireless Earbuds", Description: "noise cancelling", Price: "₹2,499", Category: "Electronics"},
		{ID: 2, Name: "Laptop Stand", Description: "aluminium", Price: "₹1,299", Category: "Office"},
		{ID: 3, Name: "Juicer", Description: "cold press", Price: "₹7,999", Category: "Kitchen"},
		{ID: 4, Name: "Mystery Box", Description: "surprise", Price: "N/A", Category: "Electronics"},
	}
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterEmptyTermIsIdentity(t *testing.T) {
	in := sample()
	got := Filter(in, "")
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("empty term changed the result: %v", ids(got))
	}
}

func TestFilterMatchesNameDescriptionCategory(t *testing.T) {
	in := sample()
	tests := []struct {
		term string
		want []int64
	}{
		{"earbuds", []int64{1}},      // name
		{"COLD", []int64{3}},         // description, case-insensitive
		{"electronics", []int64{1, 4}}, // category
		{"zzz", []int64{}},
	}
	for _, tt := range tests {
		got := ids(Filter(in, tt.term))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestFilterCategory(t *testing.T) {
	in := sample()
	if got := ids(FilterCategory(in, CategoryAll)); !reflect.DeepEqual(got, ids(in)) {
		t.Fatalf("wildcard filtered: %v", got)
	}
	if got := ids(FilterCategory(in, "Kitchen")); !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("category filter = %v, want [3]", got)
	}
}

func TestSortByPrice(t *testing.T) {
	got := ids(SortBy(sample(), SortByPrice))
	// the unparsable price sorts first, then ascending by value
	want := []int64{4, 2, 1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("price order = %v, want %v", got, want)
	}
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	once := SortBy(sample(), SortByPrice)
	twice := SortBy(once, SortByPrice)
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("sorting twice changed the order")
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sample()
	snapshot := append([]domain.Product(nil), in...)
	SortBy(in, SortByName)
	if !reflect.DeepEqual(in, snapshot) {
		t.Fatal("input slice was mutated")
	}
}

func TestApplyPipeline(t *testing.T) {
	q := Query{Search: "electronics", Category: CategoryAll, Sort: SortByPrice}
	got := ids(Apply(sample(), q))
	want := []int64{4, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}
