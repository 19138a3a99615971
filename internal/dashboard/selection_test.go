package dashboard

import (
	"slices"
	"testing"
)

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()

	if sel.Attribute != "bill_length_mm" {
		t.Errorf("Attribute = %q", sel.Attribute)
	}
	if sel.PlotlyBins != 40 || sel.SeabornBins != 20 {
		t.Errorf("bins = %d/%d, want 40/20", sel.PlotlyBins, sel.SeabornBins)
	}
	if !slices.Equal(sel.Species, []string{"Gentoo", "Chinstrap"}) {
		t.Errorf("Species = %v", sel.Species)
	}
	if !slices.Equal(sel.Islands, AllIslands) {
		t.Errorf("Islands = %v", sel.Islands)
	}

	sel.Islands[0] = "Nowhere"
	if AllIslands[0] != "Torgersen" {
		t.Error("DefaultSelection shares AllIslands")
	}
}

func TestClampSeabornBins(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {20, 20}, {40, 40}, {41, 40},
	}
	for _, tt := range tests {
		if got := ClampSeabornBins(tt.in); got != tt.want {
			t.Errorf("ClampSeabornBins(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSelection_Clone(t *testing.T) {
	a := DefaultSelection()
	b := a.Clone()
	b.Species[0] = "Adelie"

	if a.Species[0] != "Gentoo" {
		t.Error("Clone() shares the species slice")
	}
}
