package dataset

import (
	"math"
	"strconv"
)

// Column names of the palmerpenguins table.
const (
	ColSpecies       = "species"
	ColIsland        = "island"
	ColBillLength    = "bill_length_mm"
	ColBillDepth     = "bill_depth_mm"
	ColFlipperLength = "flipper_length_mm"
	ColBodyMass      = "body_mass_g"
	ColSex           = "sex"
	ColYear          = "year"
)

// Columns lists every column in table order.
var Columns = []string{
	ColSpecies, ColIsland, ColBillLength, ColBillDepth,
	ColFlipperLength, ColBodyMass, ColSex, ColYear,
}

// NumericAttributes are the measurement columns that charts can plot.
var NumericAttributes = []string{
	ColBillLength, ColBillDepth, ColFlipperLength, ColBodyMass,
}

// IsNumericAttribute reports whether name is one of NumericAttributes.
func IsNumericAttribute(name string) bool {
	for _, a := range NumericAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// Penguin is one row of the dataset. Missing measurements are NaN and a
// missing sex is "".
type Penguin struct {
	Species         string
	Island          string
	BillLengthMM    float64
	BillDepthMM     float64
	FlipperLengthMM float64
	BodyMassG       float64
	Sex             string
	Year            int
}

// Measure returns the value of a numeric attribute.
// ok is false when attr is not a numeric attribute.
func (p Penguin) Measure(attr string) (v float64, ok bool) {
	switch attr {
	case ColBillLength:
		return p.BillLengthMM, true
	case ColBillDepth:
		return p.BillDepthMM, true
	case ColFlipperLength:
		return p.FlipperLengthMM, true
	case ColBodyMass:
		return p.BodyMassG, true
	default:
		return math.NaN(), false
	}
}

// Cells renders the row as display strings in Columns order. Missing
// values are shown as NA, the way the source CSV writes them.
func (p Penguin) Cells() []string {
	return []string{
		p.Species,
		p.Island,
		formatMeasure(p.BillLengthMM),
		formatMeasure(p.BillDepthMM),
		formatMeasure(p.FlipperLengthMM),
		formatMeasure(p.BodyMassG),
		orNA(p.Sex),
		formatYear(p.Year),
	}
}

func formatMeasure(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatYear(y int) string {
	if y == 0 {
		return "NA"
	}
	return strconv.Itoa(y)
}

func orNA(s string) string {
	if s == "" {
		return "NA"
	}
	return s
}
