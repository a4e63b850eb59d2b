package pricing

import "github.com/AkumaMonarch/NekoEats/internal/model"

// DeliveryFeeAmount is the flat fee applied when the service option is delivery.
const DeliveryFeeAmount = 3.99

// EffectiveUnitPrice returns the variant price when a variant is selected,
// otherwise the item's base price. Variant price replaces the base price,
// it is not added to it.
func EffectiveUnitPrice(item model.MenuItem, variant *model.Variant) float64 {
	if variant != nil {
		return variant.Price
	}
	return item.Price
}

// AddonsTotal sums the addon prices. Zero for an empty selection.
func AddonsTotal(addons []model.Addon) float64 {
	var total float64
	for _, a := range addons {
		total += a.Price
	}
	return total
}

// LineTotal returns (unit price + addons) * quantity for a single cart line.
func LineTotal(line model.CartLine) float64 {
	return (line.UnitPrice + AddonsTotal(line.Addons)) * float64(line.Quantity)
}

// CartSubtotal sums LineTotal over all lines.
func CartSubtotal(lines []model.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += LineTotal(line)
	}
	return total
}

// VATAmount returns the VAT due on a subtotal, or 0 when VAT is disabled.
func VATAmount(subtotal float64, settings model.StoreSettings) float64 {
	if !settings.VATEnabled {
		return 0
	}
	return subtotal * settings.VATPercentage / 100
}

// DeliveryFee returns the flat delivery fee for the delivery service option
// and 0 otherwise.
func DeliveryFee(serviceOption string) float64 {
	if serviceOption == model.ServiceDelivery {
		return DeliveryFeeAmount
	}
	return 0
}

// CartTotal is subtotal + VAT + delivery fee. No rounding happens here;
// values are rounded at presentation time only.
func CartTotal(lines []model.CartLine, serviceOption string, settings model.StoreSettings) float64 {
	subtotal := CartSubtotal(lines)
	return subtotal + VATAmount(subtotal, settings) + DeliveryFee(serviceOption)
}
