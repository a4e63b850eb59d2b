package services

import (
	"testing"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBasicStats(t *testing.T) {
	orders := []model.Order{
		{Total: 100, VATAmount: 15},
		{Total: 50, VATAmount: 0},
	}
	stats := ComputeBasicStats(orders)

	assert.Equal(t, 150.0, stats.TotalSales)
	assert.Equal(t, 15.0, stats.TotalVAT)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 75.0, stats.AvgTicket)
}

func TestComputeBasicStatsEmpty(t *testing.T) {
	stats := ComputeBasicStats(nil)
	assert.Equal(t, BasicStats{}, stats)
}

func TestComputeTopItems(t *testing.T) {
	orders := []model.Order{
		{Items: []model.OrderItem{
			{Name: "Burger", Quantity: 2, Price: 10},
			{Name: "Fries", Quantity: 1, Price: 4},
		}},
		{Items: []model.OrderItem{
			{Name: "Burger", Quantity: 3, Price: 10},
			{Name: "Cola", Quantity: 5, Price: 2},
		}},
	}
	top := ComputeTopItems(orders, 2)

	require.Len(t, top, 2)
	assert.Equal(t, TopItem{Name: "Burger", Quantity: 5, Revenue: 50}, top[0])
	assert.Equal(t, TopItem{Name: "Cola", Quantity: 5, Revenue: 10}, top[1])
}

func TestComputeCategoryMix(t *testing.T) {
	orders := []model.Order{
		{Items: []model.OrderItem{
			{Name: "Burger", Quantity: 3, Price: 10, Category: "mains"},
			{Name: "Cola", Quantity: 5, Price: 2, Category: "drinks"},
			{Name: "Mystery", Quantity: 1, Price: 10},
		}},
	}
	mix := ComputeCategoryMix(orders)

	require.Len(t, mix, 3)
	assert.Equal(t, CategoryShare{Category: "mains", Revenue: 30, Percentage: 60}, mix[0])
	assert.Equal(t, CategoryShare{Category: "drinks", Revenue: 10, Percentage: 20}, mix[1])
	assert.Equal(t, CategoryShare{Category: "other", Revenue: 10, Percentage: 20}, mix[2])
}

func TestComputeBusyHoursAlwaysReturns24Buckets(t *testing.T) {
	at := func(hour int) model.Order {
		return model.Order{CreatedAt: time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)}
	}
	hours := ComputeBusyHours([]model.Order{at(12), at(12), at(19)})

	require.Len(t, hours, 24)
	assert.Equal(t, HourBucket{Hour: 12, Count: 2}, hours[12])
	assert.Equal(t, HourBucket{Hour: 19, Count: 1}, hours[19])
	assert.Equal(t, HourBucket{Hour: 0, Count: 0}, hours[0])
}

func TestComputeServiceSplitDefaultsToDelivery(t *testing.T) {
	orders := []model.Order{
		{ServiceOption: model.ServicePickup},
		{ServiceOption: ""},
		{ServiceOption: model.ServiceDelivery},
	}
	split := ComputeServiceSplit(orders)

	require.Len(t, split, 2)
	assert.Equal(t, ServiceSplit{Name: model.ServiceDelivery, Value: 2}, split[0])
	assert.Equal(t, ServiceSplit{Name: model.ServicePickup, Value: 1}, split[1])
}

func TestAggregatorsTolerateEmptyInput(t *testing.T) {
	assert.Empty(t, ComputeTopItems(nil, 5))
	assert.Empty(t, ComputeCategoryMix(nil))
	assert.Empty(t, ComputeServiceSplit(nil))
	assert.Len(t, ComputeBusyHours(nil), 24)
}
