package data

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05.000000"

	StatusWithin12h = "within_12hs"
	StatusDelayed   = "delayed"
)

// Columns is the CSV header, in the order Record emits values.
var Columns = []string{
	"order_id",
	"order_date",
	"timestamp_buy",
	"timestamp_delivery",
	"order_status",
	"payment_method",
	"product_category",
	"customer_neighborhood",
	"customer_city",
	"delivery_time",
	"delivery_status",
	"distance_to_customer",
	"order_amount",
	"courier_lastmile",
	"fulfillment_center",
	"courier_partner",
}

// Order is one synthetic e-commerce transaction.
type Order struct {
	OrderID              string
	OrderDate            time.Time
	TimestampBuy         time.Time
	TimestampDelivery    time.Time
	OrderStatus          string
	PaymentMethod        string
	ProductCategory      string
	CustomerNeighborhood string
	CustomerCity         string
	DeliveryTime         float64 // hours
	DeliveryStatus       string
	DistanceToCustomer   float64
	OrderAmount          decimal.Decimal
	CourierLastmile      string
	FulfillmentCenter    string
	CourierPartner       string
}

// Record renders the order as a CSV row matching Columns.
func (o Order) Record() []string {
	return []string{
		o.OrderID,
		o.OrderDate.Format(dateLayout),
		o.TimestampBuy.Format(timestampLayout),
		o.TimestampDelivery.Format(timestampLayout),
		o.OrderStatus,
		o.PaymentMethod,
		o.ProductCategory,
		o.CustomerNeighborhood,
		o.CustomerCity,
		formatFloat(o.DeliveryTime),
		o.DeliveryStatus,
		formatFloat(o.DistanceToCustomer),
		o.OrderAmount.StringFixed(2),
		o.CourierLastmile,
		o.FulfillmentCenter,
		o.CourierPartner,
	}
}

// DeliveryStatusFor labels a delivery delay given in hours.
func DeliveryStatusFor(hours float64) string {
	if hours <= 12 {
		return StatusWithin12h
	}
	return StatusDelayed
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
