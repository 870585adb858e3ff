package data

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SummaryRow aggregates the orders sharing one value of a dimension.
type SummaryRow struct {
	Dimension         string
	Value             string
	Count             int
	MeanDeliveryHours float64
	MeanAmount        decimal.Decimal
}

// Summary is a quick per-dimension breakdown of a generated dataset.
type Summary struct {
	Total int
	Rows  []SummaryRow
}

type dimension struct {
	name  string
	value func(Order) string
}

var summaryDimensions = []dimension{
	{"delivery_status", func(o Order) string { return o.DeliveryStatus }},
	{"product_category", func(o Order) string { return o.ProductCategory }},
	{"customer_city", func(o Order) string { return o.CustomerCity }},
	{"courier_partner", func(o Order) string { return o.CourierPartner }},
}

type accumulator struct {
	count  int
	hours  float64
	amount decimal.Decimal
}

// Summarize groups orders by each summary dimension. Rows are ordered by
// dimension, then by value.
func Summarize(orders []Order) Summary {
	summary := Summary{Total: len(orders)}

	for _, dim := range summaryDimensions {
		groups := make(map[string]*accumulator)
		for _, order := range orders {
			key := dim.value(order)
			acc, ok := groups[key]
			if !ok {
				acc = &accumulator{amount: decimal.Zero}
				groups[key] = acc
			}
			acc.count++
			acc.hours += order.DeliveryTime
			acc.amount = acc.amount.Add(order.OrderAmount)
		}

		values := make([]string, 0, len(groups))
		for value := range groups {
			values = append(values, value)
		}
		sort.Strings(values)

		for _, value := range values {
			acc := groups[value]
			n := decimal.NewFromInt(int64(acc.count))
			summary.Rows = append(summary.Rows, SummaryRow{
				Dimension:         dim.name,
				Value:             value,
				Count:             acc.count,
				MeanDeliveryHours: acc.hours / float64(acc.count),
				MeanAmount:        acc.amount.Div(n).Round(2),
			})
		}
	}
	return summary
}
