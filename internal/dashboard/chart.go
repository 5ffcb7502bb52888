package dashboard

import "github.com/jekabolt/stockroom/internal/entity"

const chartPlaces = 2

// BuildChart rounds the daily totals half away from zero to two places.
// Revenue is the difference of the rounded totals so it always matches them.
func BuildChart(totals []entity.DailyTotals) []entity.ChartPoint {
	points := make([]entity.ChartPoint, 0, len(totals))
	for _, t := range totals {
		purchases := t.Purchases.Round(chartPlaces)
		sales := t.Sales.Round(chartPlaces)
		points = append(points, entity.ChartPoint{
			Day:       t.Day,
			Purchases: purchases,
			Sales:     sales,
			Revenue:   sales.Sub(purchases),
		})
	}
	return points
}
