package enums

import "fmt"

// PaymentMethodID identifies how a buyer settles a purchase. The ids match
// the catalog rows the storefront sends; anything outside the offline set is
// treated as a card payment and routed through the gateway.
type PaymentMethodID int

const (
	PaymentMethodCard         PaymentMethodID = 1
	PaymentMethodBankTransfer PaymentMethodID = 4
	PaymentMethodStoreCash    PaymentMethodID = 5
	PaymentMethodOxxo         PaymentMethodID = 6
	PaymentMethodSpei         PaymentMethodID = 7
)

var offlineMethods = map[PaymentMethodID]struct{}{
	PaymentMethodBankTransfer: {},
	PaymentMethodStoreCash:    {},
	PaymentMethodOxxo:         {},
	PaymentMethodSpei:         {},
}

var methodLabels = map[PaymentMethodID]string{
	PaymentMethodCard:         "Tarjeta de Crédito",
	PaymentMethodBankTransfer: "Transferencia Bancaria",
	PaymentMethodStoreCash:    "Efectivo en Tienda",
	PaymentMethodOxxo:         "OXXO",
	PaymentMethodSpei:         "SPEI",
}

var methodShortLabels = map[PaymentMethodID]string{
	PaymentMethodCard:         "Tarjeta",
	PaymentMethodBankTransfer: "Transferencia",
	PaymentMethodStoreCash:    "Efectivo",
	PaymentMethodOxxo:         "OXXO",
	PaymentMethodSpei:         "SPEI",
}

// IsOffline reports whether the method settles without a gateway round trip.
func (p PaymentMethodID) IsOffline() bool {
	_, ok := offlineMethods[p]
	return ok
}

// Label returns the human-readable payment method name used on order summaries.
func (p PaymentMethodID) Label() string {
	if label, ok := methodLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("Método %d", int(p))
}

// ShortLabel returns the compact name used in report breakdowns.
func (p PaymentMethodID) ShortLabel() string {
	if label, ok := methodShortLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("Método %d", int(p))
}
