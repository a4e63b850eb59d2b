// Package whatsapp builds the wa.me handoff link shown after checkout. The
// customer sends the prefilled summary themselves; nothing here talks to
// WhatsApp directly.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AkumaMonarch/NekoEats/internal/model"
)

// OrderMessage renders the human-readable order summary.
func OrderMessage(order *model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New Order %s\n", order.OrderCode)
	fmt.Fprintf(&b, "Name: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", order.CustomerPhone)

	for _, it := range order.Items {
		fmt.Fprintf(&b, "%dx %s", it.Quantity, it.Name)
		if it.Variant != nil {
			fmt.Fprintf(&b, " (%s)", it.Variant.Name)
		}
		for _, a := range it.Addons {
			fmt.Fprintf(&b, " +%s", a.Name)
		}
		b.WriteString("\n")
	}

	if order.ServiceOption == model.ServiceDelivery && order.DeliveryAddress != "" {
		fmt.Fprintf(&b, "\nDeliver to: %s\n", order.DeliveryAddress)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", order.Total)
	return b.String()
}

// OrderLink returns the wa.me deep link with the summary prefilled.
func OrderLink(phone string, order *model.Order) string {
	number := strings.TrimLeft(strings.ReplaceAll(phone, " ", ""), "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(OrderMessage(order)))
}
