package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"
)

// ReportService derives read-side projections from historical orders. The
// aggregation functions are pure; the repository only supplies the closed set
// of orders to project over.
type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(r *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: r}
}

type BasicStats struct {
	TotalSales  float64 `json:"total_sales"`
	TotalVAT    float64 `json:"total_vat"`
	TotalOrders int     `json:"total_orders"`
	AvgTicket   float64 `json:"avg_ticket"`
}

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CategoryShare struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	Percentage int     `json:"percentage"`
}

type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type ServiceSplit struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardStats struct {
	BasicStats
	TopItems    []TopItem       `json:"top_items"`
	CategoryMix []CategoryShare `json:"category_mix"`
	BusyHours   []HourBucket    `json:"busy_hours"`
	ServiceMix  []ServiceSplit  `json:"service_mix"`
}

// Dashboard projects over all non-cancelled orders.
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.Repo.GetNonCancelled(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		BasicStats:  ComputeBasicStats(orders),
		TopItems:    ComputeTopItems(orders, 5),
		CategoryMix: ComputeCategoryMix(orders),
		BusyHours:   ComputeBusyHours(orders),
		ServiceMix:  ComputeServiceSplit(orders),
	}, nil
}

type RangeReport struct {
	BasicStats
	TopItems    []TopItem       `json:"top_items"`
	CategoryMix []CategoryShare `json:"category_mix"`
	BusyHours   []HourBucket    `json:"busy_hours"`
	ServiceMix  []ServiceSplit  `json:"service_mix"`
	Orders      []model.Order   `json:"orders"`
}

// Range projects over completed orders between start and end. The end date is
// extended to the end of its day so a same-day range is inclusive.
func (s *ReportService) Range(ctx context.Context, start, end time.Time) (*RangeReport, error) {
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())
	orders, err := s.Repo.GetCompletedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &RangeReport{
		BasicStats:  ComputeBasicStats(orders),
		TopItems:    ComputeTopItems(orders, 5),
		CategoryMix: ComputeCategoryMix(orders),
		BusyHours:   ComputeBusyHours(orders),
		ServiceMix:  ComputeServiceSplit(orders),
		Orders:      orders,
	}, nil
}

// ComputeBasicStats sums totals and VAT over the orders. An empty input yields
// all zeroes; avg ticket guards the division.
func ComputeBasicStats(orders []model.Order) BasicStats {
	stats := BasicStats{TotalOrders: len(orders)}
	for _, o := range orders {
		stats.TotalSales += o.Total
		stats.TotalVAT += o.VATAmount
	}
	if stats.TotalOrders > 0 {
		stats.AvgTicket = stats.TotalSales / float64(stats.TotalOrders)
	}
	return stats
}

// ComputeTopItems groups line items by name, sums quantity and revenue, sorts
// by quantity descending and keeps the first limit entries.
func ComputeTopItems(orders []model.Order, limit int) []TopItem {
	grouped := map[string]*TopItem{}
	for _, o := range orders {
		for _, it := range o.Items {
			t, ok := grouped[it.Name]
			if !ok {
				t = &TopItem{Name: it.Name}
				grouped[it.Name] = t
			}
			t.Quantity += it.Quantity
			t.Revenue += it.Price * float64(it.Quantity)
		}
	}

	items := make([]TopItem, 0, len(grouped))
	for _, t := range grouped {
		items = append(items, *t)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// ComputeCategoryMix groups item revenue by menu category and expresses each
// category as an integer percentage of total itemized revenue, sorted by
// revenue descending. Items whose menu item is gone fall under "other".
func ComputeCategoryMix(orders []model.Order) []CategoryShare {
	revenue := map[string]float64{}
	var total float64
	for _, o := range orders {
		for _, it := range o.Items {
			category := it.Category
			if category == "" {
				category = "other"
			}
			value := it.Price * float64(it.Quantity)
			revenue[category] += value
			total += value
		}
	}

	mix := make([]CategoryShare, 0, len(revenue))
	for category, value := range revenue {
		share := CategoryShare{Category: category, Revenue: value}
		if total > 0 {
			share.Percentage = int(math.Round(value / total * 100))
		}
		mix = append(mix, share)
	}
	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Revenue != mix[j].Revenue {
			return mix[i].Revenue > mix[j].Revenue
		}
		return mix[i].Category < mix[j].Category
	})
	return mix
}

// ComputeBusyHours buckets orders by hour of creation. All 24 buckets are
// always present, zero-filled.
func ComputeBusyHours(orders []model.Order) []HourBucket {
	buckets := make([]HourBucket, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}
	for _, o := range orders {
		buckets[o.CreatedAt.Hour()].Count++
	}
	return buckets
}

// ComputeServiceSplit counts orders per service option. A missing option
// counts as delivery.
func ComputeServiceSplit(orders []model.Order) []ServiceSplit {
	counts := map[string]int{}
	for _, o := range orders {
		option := o.ServiceOption
		if option == "" {
			option = model.ServiceDelivery
		}
		counts[option]++
	}

	split := make([]ServiceSplit, 0, len(counts))
	for name, value := range counts {
		split = append(split, ServiceSplit{Name: name, Value: value})
	}
	sort.Slice(split, func(i, j int) bool {
		if split[i].Value != split[j].Value {
			return split[i].Value > split[j].Value
		}
		return split[i].Name < split[j].Name
	})
	return split
}
