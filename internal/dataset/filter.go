package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Filter returns the rows of d whose species is in species AND whose
// island is in islands, in table order.
//
// An empty set matches nothing, and values that do not occur in the data
// simply match no rows. The result is a new Dataset; d is not modified, so
// filtering the result again with the same sets yields the same rows.
func (d *Dataset) Filter(species, islands []string) *Dataset {
	filtered := d.frame.FilterAggregation(dataframe.And,
		dataframe.F{Colname: ColSpecies, Comparator: series.In, Comparando: nonNil(species)},
		dataframe.F{Colname: ColIsland, Comparator: series.In, Comparando: nonNil(islands)},
	)
	out, err := fromFrame(filtered, d.source)
	if err != nil {
		// Both columns are checked at load time.
		panic(fmt.Sprintf("dataset: filtering %s: %v", d.source, err))
	}
	return out
}

// Filter is the free-function form of (*Dataset).Filter.
func Filter(d *Dataset, species, islands []string) *Dataset {
	return d.Filter(species, islands)
}

// nonNil keeps gota from seeing a nil interface value when a set is empty.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
