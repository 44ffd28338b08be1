// Package whatsapp composes the order summary handed to the customer's
// messaging app. The text format is a fixed contract with the restaurant's
// staff workflow; change it and their parsing habits break.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"grill-master/internal/cart"
	"grill-master/internal/model"
)

// BuildMessage renders the plain-text order summary: customer fields, one
// line per cart line, grand total, the order reference fragment and, when a
// table was selected, a trailing table line. Emojis are kept as-is since the
// payload is pure text.
func BuildMessage(order *model.Order, lines []cart.Line, table *model.RestaurantTable) string {
	var b strings.Builder

	b.WriteString("🍽️ *Nouvelle commande - The Grill Master*\n\n")
	fmt.Fprintf(&b, "👤 Nom: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📱 Téléphone: %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "📍 %s\n\n", order.DeliveryAddress)

	b.WriteString("*Détails de la commande:*\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s x%d = %d FCFA", line.Product.Name, line.Quantity, line.Subtotal())
	}

	fmt.Fprintf(&b, "\n\n💰 *Total: %d FCFA*\n\n", order.TotalAmount)
	fmt.Fprintf(&b, "Commande #%.8s", order.ID.String())

	if table != nil {
		fmt.Fprintf(&b, "\n🪑 Table #%d", table.TableNumber)
	}

	return b.String()
}

// RedirectURL builds the wa.me deep link carrying the encoded message.
// Number is the restaurant's WhatsApp number without the plus sign.
func RedirectURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
