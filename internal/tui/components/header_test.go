package components

import (
	"strings"
	"testing"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader("Penguins")
	if h == nil {
		t.Fatal("NewHeader returned nil")
	}

	view := h.View()
	if !strings.Contains(view, "Penguins") {
		t.Error("Header should contain the title")
	}
	if !strings.Contains(view, "0/0") {
		t.Error("Header should show zero rows before data arrives")
	}
}

func TestHeaderSetData(t *testing.T) {
	h := NewHeader("Penguins")
	h.SetData(HeaderData{
		Title:    "Pranali's Penguin Data",
		Source:   "bundled",
		Rows:     69,
		Filtered: 33,
		Page:     "Charts",
	})

	view := h.View()

	for _, want := range []string{"Pranali's Penguin Data", "bundled", "33/69", "Charts"} {
		if !strings.Contains(view, want) {
			t.Errorf("Header should contain %q, got %q", want, view)
		}
	}
}

func TestHeaderSetters(t *testing.T) {
	h := NewHeader("Penguins")
	h.SetSource("penguins.csv")
	h.SetRows(344, 10)
	h.SetPage("Tables")

	view := h.View()
	if !strings.Contains(view, "penguins.csv") {
		t.Error("Header should contain the source")
	}
	if !strings.Contains(view, "10/344") {
		t.Error("Header should contain filtered/total rows")
	}
	if !strings.Contains(view, "Tables") {
		t.Error("Header should contain the page")
	}
}

func TestHeaderNoPage(t *testing.T) {
	h := NewHeader("Penguins")
	if strings.Contains(h.View(), "Page:") {
		t.Error("Header should omit the page label when no page is set")
	}
}

func TestHeaderSetWidth(t *testing.T) {
	h := NewHeader("Penguins")
	h.SetWidth(100)

	if h.width != 100 {
		t.Errorf("width = %d, want 100", h.width)
	}
	if h.View() == "" {
		t.Error("View should not be empty")
	}
}
