package motif_catalog

import (
	"errors"
	"testing"
)

func TestSetSizes(t *testing.T) {
	tests := []struct {
		name SetName
		want int
	}{
		{Composition, 20},
		{CysLigation, 20},
		{AlaLigation, 20},
		{Aspartimide, 20},
		{Pseudoproline, 32},
		{AllDipeptides, 400},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			s, err := Set(tt.name)
			if err != nil {
				t.Fatalf("Set(%q) error: %v", tt.name, err)
			}
			if s.Size() != tt.want {
				t.Errorf("Set(%q).Size() = %d, want %d", tt.name, s.Size(), tt.want)
			}
		})
	}
}

func TestSetOrder(t *testing.T) {
	tests := []struct {
		name  SetName
		first Motif
		last  Motif
	}{
		{Composition, "A", "Y"},
		{CysLigation, "AC", "YC"},
		{AlaLigation, "AA", "YA"},
		{Aspartimide, "DA", "DY"},
		{Pseudoproline, "AS", "YT"},
		{AllDipeptides, "AA", "YY"},
	}
	for _, tt := range tests {
		s := MustSet(tt.name)
		if got := s.Motifs[0]; got != tt.first {
			t.Errorf("%s first = %q, want %q", tt.name, got, tt.first)
		}
		if got := s.Motifs[len(s.Motifs)-1]; got != tt.last {
			t.Errorf("%s last = %q, want %q", tt.name, got, tt.last)
		}
	}

	all := MustSet(AllDipeptides)
	// row-major: AA, AC, AD ... then CA
	if all.Motifs[1] != "AC" || all.Motifs[20] != "CA" {
		t.Errorf("AllDipeptides not row-major: [1]=%q [20]=%q", all.Motifs[1], all.Motifs[20])
	}

	ps := MustSet(Pseudoproline)
	want := []Motif{"AS", "AT", "DS", "DT", "ES", "ET"}
	for i, m := range want {
		if ps.Motifs[i] != m {
			t.Errorf("Pseudoproline[%d] = %q, want %q", i, ps.Motifs[i], m)
		}
	}
	for _, excluded := range []Motif{"CS", "PS", "SS", "TS", "CT", "PT"} {
		if ps.IndexOf(excluded) != -1 {
			t.Errorf("Pseudoproline unexpectedly contains %q", excluded)
		}
	}
}

func TestSetUnknown(t *testing.T) {
	_, err := Set("Glycation")
	if !errors.Is(err, ErrMotifNotFound) {
		t.Fatalf("Set(unknown) error = %v, want ErrMotifNotFound", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSet(unknown) did not panic")
		}
	}()
	MustSet("Glycation")
}

func TestSetReturnsCopy(t *testing.T) {
	s := MustSet(Composition)
	s.Motifs[0] = "Z"
	if MustSet(Composition).Motifs[0] != "A" {
		t.Error("catalog mutated through returned set")
	}
}

func TestResidueIndex(t *testing.T) {
	if ResidueIndex('A') != 0 || ResidueIndex('Y') != 19 || ResidueIndex('W') != 18 {
		t.Errorf("unexpected canonical indexes")
	}
	for _, b := range []byte{'B', 'X', 'Z', 'a', '*', '-'} {
		if ResidueIndex(b) != -1 {
			t.Errorf("ResidueIndex(%q) = %d, want -1", b, ResidueIndex(b))
		}
		if IsCanonical(rune(b)) {
			t.Errorf("IsCanonical(%q) = true", b)
		}
	}
	if IsCanonical('é') {
		t.Error("IsCanonical accepted a non-ASCII rune")
	}
}
