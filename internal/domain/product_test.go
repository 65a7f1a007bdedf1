package domain

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Product{Name: "Bottle", Price: "₹899", Category: "Home"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}
	for _, p := range []Product{
		{Price: "₹899", Category: "Home"},
		{Name: "Bottle", Category: "Home"},
		{Name: "Bottle", Price: "₹899"},
	} {
		if err := p.Validate(); err == nil {
			t.Errorf("product %+v accepted, want ErrInvalidProduct", p)
		}
	}
}

func TestReplaceByID(t *testing.T) {
	in := []Product{
		{ID: 1, Name: "A", Price: "₹1", Category: "x"},
		{ID: 2, Name: "B", Price: "₹2", Category: "x"},
	}
	snapshot := append([]Product(nil), in...)

	out, replaced := ReplaceByID(in, Product{ID: 2, Name: "B2", Price: "₹2", Category: "x"})
	if !replaced {
		t.Fatal("existing ID not replaced")
	}
	if out[1].Name != "B2" {
		t.Fatalf("replacement not applied: %+v", out[1])
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Fatal("input slice was mutated")
	}

	_, replaced = ReplaceByID(in, Product{ID: 99, Name: "X", Price: "₹1", Category: "x"})
	if replaced {
		t.Fatal("unknown ID reported as replaced")
	}
}

func TestRemoveByID(t *testing.T) {
	in := []Product{{ID: 1, Name: "A", Price: "₹1", Category: "x"}}

	out, removed := RemoveByID(in, 1)
	if !removed || len(out) != 0 {
		t.Fatalf("remove failed: removed=%v out=%v", removed, out)
	}
	if len(in) != 1 {
		t.Fatal("input slice was mutated")
	}

	_, removed = RemoveByID(in, 99)
	if removed {
		t.Fatal("unknown ID reported as removed")
	}
}

func TestFeatured(t *testing.T) {
	in := []Product{
		{ID: 1, Featured: true},
		{ID: 2},
		{ID: 3, Featured: true},
		{ID: 4, Featured: true},
		{ID: 5, Featured: true},
	}
	got := Featured(in, 3)
	if len(got) != 3 {
		t.Fatalf("limit not applied: got %d items", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 || got[2].ID != 4 {
		t.Fatalf("catalog order not preserved: %v", got)
	}
	if all := Featured(in, 0); len(all) != 4 {
		t.Fatalf("no-limit call returned %d items, want 4", len(all))
	}
}
