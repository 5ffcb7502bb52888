package dto

import "github.com/jekabolt/stockroom/internal/entity"

// ChartPoint is one day of the dashboard chart as served over JSON.
type ChartPoint struct {
	Day       string  `json:"day"`
	Purchases float64 `json:"purchases"`
	Sales     float64 `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

// ConvertEntityChartPoints never returns nil so an empty chart encodes as [].
func ConvertEntityChartPoints(points []entity.ChartPoint) []ChartPoint {
	res := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		// values are rounded to cents, the exactness flag carries nothing
		purchases, _ := p.Purchases.Float64()
		sales, _ := p.Sales.Float64()
		revenue, _ := p.Revenue.Float64()
		res = append(res, ChartPoint{
			Day:       p.Day,
			Purchases: purchases,
			Sales:     sales,
			Revenue:   revenue,
		})
	}
	return res
}
