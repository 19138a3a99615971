// Package dataset holds the penguin measurement table.
//
// A Dataset is loaded once and never mutated. Filtering returns a new
// Dataset, so the same value can be shared by every widget that reads it.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	perrors "github.com/cintel/penguins/internal/errors"
)

//go:embed data/penguins.csv
var bundledCSV string

// BundledSource is the Source of the dataset compiled into the binary.
const BundledSource = "bundled"

// columnTypes pins the gota column types so that a column whose values
// happen to be whole numbers (flipper length, body mass) still loads as
// float and carries NaN for missing entries.
var columnTypes = map[string]series.Type{
	ColSpecies:       series.String,
	ColIsland:        series.String,
	ColBillLength:    series.Float,
	ColBillDepth:     series.Float,
	ColFlipperLength: series.Float,
	ColBodyMass:      series.Float,
	ColSex:           series.String,
	ColYear:          series.Int,
}

// requiredColumns must be present in any CSV we load.
var requiredColumns = []string{
	ColSpecies, ColIsland, ColBillLength, ColBillDepth, ColFlipperLength, ColBodyMass,
}

// Dataset is an immutable table of penguins backed by a gota DataFrame.
type Dataset struct {
	frame  dataframe.DataFrame
	rows   []Penguin
	source string
}

// Bundled returns the dataset embedded in the binary.
func Bundled() (*Dataset, error) {
	return Read(strings.NewReader(bundledCSV), BundledSource)
}

// Open loads a dataset from a CSV file. An empty path returns the
// bundled dataset.
func Open(path string) (*Dataset, error) {
	if path == "" {
		return Bundled()
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perrors.DatasetNotFound(path)
		}
		return nil, perrors.DatasetParseError(path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses a palmerpenguins-style CSV. source names the origin in
// errors and in Source().
func Read(r io.Reader, source string) (*Dataset, error) {
	errPath := source
	if source == BundledSource {
		errPath = ""
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues([]string{"NA", "NaN", ""}),
	)
	if df.Err != nil {
		return nil, perrors.DatasetParseError(errPath, df.Err)
	}

	if missing := missingColumns(df.Names()); len(missing) > 0 {
		return nil, perrors.DatasetParseError(errPath,
			fmt.Errorf("missing columns: %s", strings.Join(missing, ", ")))
	}

	ds, err := fromFrame(df, source)
	if err != nil {
		return nil, perrors.DatasetParseError(errPath, err)
	}
	return ds, nil
}

func missingColumns(names []string) []string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// fromFrame materializes typed rows from the frame's columns.
func fromFrame(df dataframe.DataFrame, source string) (*Dataset, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	n := df.Nrow()
	names := df.Names()
	has := func(col string) bool {
		for _, name := range names {
			if name == col {
				return true
			}
		}
		return false
	}

	species := stringColumn(df.Col(ColSpecies))
	islands := stringColumn(df.Col(ColIsland))
	billLength := df.Col(ColBillLength).Float()
	billDepth := df.Col(ColBillDepth).Float()
	flipper := df.Col(ColFlipperLength).Float()
	mass := df.Col(ColBodyMass).Float()

	var sex []string
	if has(ColSex) {
		sex = stringColumn(df.Col(ColSex))
	}
	var years []int
	if has(ColYear) {
		years = intColumn(df.Col(ColYear))
	}

	rows := make([]Penguin, n)
	for i := 0; i < n; i++ {
		p := Penguin{
			Species:         species[i],
			Island:          islands[i],
			BillLengthMM:    billLength[i],
			BillDepthMM:     billDepth[i],
			FlipperLengthMM: flipper[i],
			BodyMassG:       mass[i],
		}
		if sex != nil {
			p.Sex = sex[i]
		}
		if years != nil {
			p.Year = years[i]
		}
		rows[i] = p
	}

	return &Dataset{frame: df, rows: rows, source: source}, nil
}

func stringColumn(s series.Series) []string {
	out := make([]string, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.String()
	}
	return out
}

func intColumn(s series.Series) []int {
	out := make([]int, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		if v, err := e.Int(); err == nil {
			out[i] = v
		}
	}
	return out
}

// Source returns where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows returns a copy of the rows in table order.
func (d *Dataset) Rows() []Penguin {
	out := make([]Penguin, len(d.rows))
	copy(out, d.rows)
	return out
}

// Row returns the i-th row.
func (d *Dataset) Row(i int) Penguin {
	return d.rows[i]
}

// Records returns the rows as display strings, without a header.
func (d *Dataset) Records() [][]string {
	out := make([][]string, len(d.rows))
	for i, p := range d.rows {
		out[i] = p.Cells()
	}
	return out
}

// Species returns the distinct species in order of first appearance.
func (d *Dataset) Species() []string {
	return distinct(d.rows, func(p Penguin) string { return p.Species })
}

// Islands returns the distinct islands in order of first appearance.
func (d *Dataset) Islands() []string {
	return distinct(d.rows, func(p Penguin) string { return p.Island })
}

func distinct(rows []Penguin, key func(Penguin) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range rows {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// WriteCSV writes the table as CSV, header included.
func (d *Dataset) WriteCSV(w io.Writer) error {
	return d.frame.WriteCSV(w)
}

// WriteJSON writes the table as a JSON array of row objects.
func (d *Dataset) WriteJSON(w io.Writer) error {
	return d.frame.WriteJSON(w)
}
