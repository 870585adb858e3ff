package data

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrderCount = errors.New("order count must not be negative")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
)

// GeneratorConfig controls how many orders are synthesized and over which days.
type GeneratorConfig struct {
	Orders    int
	StartDate time.Time
	EndDate   time.Time
	// Seed makes the output reproducible; zero seeds from the clock.
	Seed int64
}

// Generator produces synthetic orders from a single random stream.
type Generator struct {
	cfg GeneratorConfig
	rnd *rand.Rand
}

// NewGenerator validates cfg and returns a Generator for it.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if cfg.Orders < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrderCount, cfg.Orders)
	}
	cfg.StartDate = truncateDay(cfg.StartDate)
	cfg.EndDate = truncateDay(cfg.EndDate)
	if cfg.StartDate.After(cfg.EndDate) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			cfg.StartDate.Format(dateLayout), cfg.EndDate.Format(dateLayout))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{cfg: cfg, rnd: rand.New(rand.NewSource(seed))}, nil
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// Generate returns exactly cfg.Orders freshly sampled orders.
func (g *Generator) Generate() ([]Order, error) {
	orders := make([]Order, 0, g.cfg.Orders)
	ids := newIDSource(g.rnd, g.cfg.Orders)
	days := int(g.cfg.EndDate.Sub(g.cfg.StartDate)/(24*time.Hour)) + 1

	for i := 0; i < g.cfg.Orders; i++ {
		id, err := ids.Next()
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		orders = append(orders, g.buildSyntheticOrder(id, days))
	}
	return orders, nil
}

func (g *Generator) buildSyntheticOrder(id string, days int) Order {
	rnd := g.rnd

	orderDate := g.cfg.StartDate.AddDate(0, 0, rnd.Intn(days))
	bought := orderDate.Add(time.Duration(rnd.Int63n(int64(24*time.Hour/time.Microsecond))) * time.Microsecond)

	order := Order{
		OrderID:              id,
		OrderDate:            orderDate,
		TimestampBuy:         bought,
		OrderStatus:          randomChoice(orderStatuses, rnd),
		PaymentMethod:        randomChoice(paymentMethods, rnd),
		ProductCategory:      randomChoice(productCategories, rnd),
		CustomerNeighborhood: randomChoice(neighborhoods, rnd),
		CustomerCity:         randomChoice(cities, rnd),
	}

	order.DeliveryTime = uniform(rnd, 1, 24)
	order.TimestampDelivery = bought.Add(hoursToDuration(order.DeliveryTime))
	order.DeliveryStatus = DeliveryStatusFor(order.DeliveryTime)
	order.DistanceToCustomer = uniform(rnd, 1, 100)
	order.OrderAmount = decimal.NewFromFloat(uniform(rnd, 10, 1000)).Round(2)
	order.CourierLastmile = randomChoice(vehicles, rnd)
	order.FulfillmentCenter = randomChoice(centers, rnd)
	order.CourierPartner = randomChoice(couriers, rnd)
	return order
}

var (
	orderStatuses     = []string{"pending", "shipped", "delivered", "cancelled", "processing", "returned"}
	paymentMethods    = []string{"credit_card", "debit_card", "paypal", "cash_on_delivery"}
	productCategories = []string{
		"electronics", "clothing", "books", "furniture", "grocery",
		"beauty", "sports", "automotive", "toys", "stationery",
	}
	neighborhoods = []string{"Downtown", "Midtown", "Uptown", "East Side", "West Side", "North Side", "South Side"}
	cities        = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	}
	vehicles = []string{"bicycle", "motorcycle", "car", "van", "truck"}
	couriers = []string{"Courier A", "Courier B", "Courier C", "Courier D", "Courier E"}
	centers  = []string{"Center A", "Center B", "Center C", "Center D", "Center E"}
)

func randomChoice(items []string, rnd *rand.Rand) string {
	return items[rnd.Intn(len(items))]
}

// uniform samples [lo, hi).
func uniform(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
