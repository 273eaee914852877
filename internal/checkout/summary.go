package checkout

import (
	"fmt"
	"time"

	"github.com/Christian112b/costanzo-backend/internal/cart"
	"github.com/Christian112b/costanzo-backend/pkg/enums"
)

// fallbackAddress is shown when the buyer gave no shipping address.
const fallbackAddress = "Dirección no especificada"

// SummaryLine is one purchased product on the order summary.
type SummaryLine struct {
	Name      string  `json:"nombre"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	Total     float64 `json:"total"`
}

// OrderSummary is the confirmation payload assembled after an online
// settlement. It is logged for the back office; no delivery channel is wired.
type OrderSummary struct {
	OrderNumber   string        `json:"numero_pedido"`
	Date          string        `json:"fecha"`
	Lines         []SummaryLine `json:"productos"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"iva"`
	Discount      float64       `json:"descuento"`
	DiscountInfo  string        `json:"descuento_info,omitempty"`
	Total         float64       `json:"total"`
	Address       string        `json:"direccion"`
	PaymentMethod string        `json:"metodo_pago"`
}

// buildSummary renders the order summary for a settled cart.
func buildSummary(paidAt time.Time, items []cart.ItemWithProduct, totals settlementTotals, discountInfo, address string, method enums.PaymentMethodID) OrderSummary {
	lines := make([]SummaryLine, 0, len(items))
	for _, item := range items {
		lineTotal := item.UnitPriceCents * int64(item.Quantity)
		lines = append(lines, SummaryLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: centsToUnits(item.UnitPriceCents),
			Total:     centsToUnits(lineTotal),
		})
	}
	if address == "" {
		address = fallbackAddress
	}
	return OrderSummary{
		OrderNumber:   fmt.Sprintf("CC-%s", paidAt.Format("20060102150405")),
		Date:          paidAt.Format("02/01/2006 15:04"),
		Lines:         lines,
		Subtotal:      centsToUnits(totals.SubtotalCents),
		Tax:           centsToUnits(totals.TaxCents),
		Discount:      centsToUnits(totals.DiscountCents),
		DiscountInfo:  discountInfo,
		Total:         centsToUnits(totals.TotalCents),
		Address:       address,
		PaymentMethod: method.Label(),
	}
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
