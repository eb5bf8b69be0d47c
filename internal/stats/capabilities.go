package stats

import "github.com/KaramelBytes/costview-cli/internal/dataset"

// View names the dashboard views the core can feed.
type View string

const (
	ViewKPI             View = "kpi"
	ViewCostRentScatter View = "cost-rent-scatter"
	ViewTopCost         View = "top-cost"
	ViewTopPower        View = "top-power"
	ViewGroceriesHist   View = "groceries-histogram"
	ViewRestaurantPower View = "restaurant-power-scatter"
	ViewCorrelation     View = "correlation-heatmap"
	ViewExport          View = "export"
)

var viewRequirements = map[View][]string{
	ViewKPI:             {dataset.ColCostOfLiving},
	ViewCostRentScatter: {dataset.ColCountry, dataset.ColCostOfLiving, dataset.ColRent},
	ViewTopCost:         {dataset.ColCountry, dataset.ColCostOfLiving},
	ViewTopPower:        {dataset.ColCountry, dataset.ColPurchasingPower},
	ViewGroceriesHist:   {dataset.ColGroceries},
	ViewRestaurantPower: {dataset.ColRestaurantPrice, dataset.ColPurchasingPower},
	ViewCorrelation:     {},
	ViewExport:          {},
}

// Capabilities reports which views the cleaned dataset can support, based
// on a single schema check. Consumers use this declaratively instead of
// re-probing column existence at each chart. The correlation view needs at
// least two present indicator columns; export always works.
func Capabilities(d *dataset.Dataset) map[View]bool {
	out := make(map[View]bool, len(viewRequirements))
	for view, cols := range viewRequirements {
		ok := true
		for _, c := range cols {
			if !d.HasColumn(c) {
				ok = false
				break
			}
		}
		out[view] = ok
	}
	out[ViewCorrelation] = len(d.PresentIndicators()) >= 2
	return out
}
