package whatsapp

import (
	"testing"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleOrder() *model.Order {
	return &model.Order{
		OrderCode:     "#123",
		CustomerName:  "Alex",
		CustomerPhone: "555-1234",
		Total:         37.0,
		ServiceOption: model.ServicePickup,
		Items: []model.OrderItem{
			{
				Name:     "Burger",
				Quantity: 2,
				Variant:  &model.Variant{Name: "Double Patty", Price: 16.5},
				Addons:   []model.Addon{{Name: "Bacon", Price: 2}},
			},
		},
	}
}

func TestOrderMessage(t *testing.T) {
	msg := OrderMessage(sampleOrder())

	assert.Contains(t, msg, "New Order #123")
	assert.Contains(t, msg, "Name: Alex")
	assert.Contains(t, msg, "2x Burger (Double Patty) +Bacon")
	assert.Contains(t, msg, "Total: $37.00")
	assert.NotContains(t, msg, "Deliver to")
}

func TestOrderMessageIncludesDeliveryAddress(t *testing.T) {
	o := sampleOrder()
	o.ServiceOption = model.ServiceDelivery
	o.DeliveryAddress = "12 Cat Street"

	assert.Contains(t, OrderMessage(o), "Deliver to: 12 Cat Street")
}

func TestOrderLinkEscapesMessageAndNormalizesNumber(t *testing.T) {
	link := OrderLink("+230 5766 5303", sampleOrder())

	assert.Contains(t, link, "https://wa.me/23057665303?text=")
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+230")
}
