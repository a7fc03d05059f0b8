package tiles

import "testing"

func TestRefillFillsToRackSize(t *testing.T) {
	b := NewBag(1)
	r := NewRack()
	n := r.Refill(b)
	if n != RackSize {
		t.Fatalf("expected %d tiles drawn, got %d", RackSize, n)
	}
	if r.Len() != RackSize {
		t.Errorf("expected rack len %d, got %d", RackSize, r.Len())
	}
}

func TestConsumeAtomicFailure(t *testing.T) {
	r := NewRack()
	r.add(Tile{Letter: 'A', Points: 1})
	r.add(Tile{Letter: 'B', Points: 3})
	before := r.Len()
	_, err := r.Consume([]Tile{{Letter: 'A', Points: 1}, {Letter: 'Z', Points: 10}})
	if err == nil {
		t.Fatalf("expected error consuming unavailable tile")
	}
	if r.Len() != before {
		t.Errorf("rack should be untouched after failed consume, got len %d", r.Len())
	}
}

func TestConsumeRemovesExactTiles(t *testing.T) {
	r := NewRack()
	r.add(Tile{Letter: 'A', Points: 1})
	r.add(Tile{Letter: 'A', Points: 1})
	r.add(Tile{Letter: 'B', Points: 3})
	removed, err := r.Consume([]Tile{{Letter: 'A', Points: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 1 || removed[0].Letter != 'A' || removed[0].Points != 1 {
		t.Errorf("expected removed tile to be A worth 1 point, got %+v", removed)
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 tiles remaining, got %d", r.Len())
	}
	if r.Letters['A'] != 1 {
		t.Errorf("expected 1 A remaining, got %d", r.Letters['A'])
	}
}

func TestConsumeBlankMatchesAnyBlank(t *testing.T) {
	r := NewRack()
	r.add(Tile{IsBlank: true})
	if !r.ContainsMultiset([]Tile{{IsBlank: true}}) {
		t.Errorf("expected blank request to match blank in rack")
	}
	if _, err := r.Consume([]Tile{{IsBlank: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsEmpty() {
		t.Errorf("expected rack to be empty after consuming its only tile")
	}
}

func TestPointTotal(t *testing.T) {
	r := NewRack()
	r.add(Tile{Letter: 'A', Points: 1})
	r.add(Tile{Letter: 'Z', Points: 10})
	if got := r.PointTotal(); got != 11 {
		t.Errorf("expected point total 11, got %d", got)
	}
}
