package reports

// MethodBreakdown aggregates successful payments for one payment method.
type MethodBreakdown struct {
	Method string  `json:"metodo"`
	Total  float64 `json:"total"`
	Count  int64   `json:"cantidad"`
}

// SaleDetail is one row of the latest-sales table, settled or still pending.
// ItemCount comes from the cart the payment was correlated to, zero when none
// matched; IntentRef is null for offline payments.
type SaleDetail struct {
	ID        int64   `json:"id"`
	IntentRef *string `json:"intento_pago"`
	Date      string  `json:"fecha"`
	Method    string  `json:"metodo"`
	Amount    float64 `json:"monto"`
	Status    string  `json:"estado"`
	ItemCount int64   `json:"productos"`
}

// WeekRevenue is one bucket of the weekly revenue chart.
type WeekRevenue struct {
	Week  string  `json:"semana"`
	Total float64 `json:"total"`
}

// Report is the dashboard payload. Amounts are currency units as floats.
type Report struct {
	TotalSales      float64           `json:"ventas_totales"`
	CompletedOrders int64             `json:"pedidos_completados"`
	ProductsSold    int64             `json:"productos_vendidos"`
	CouponsUsed     int64             `json:"cupones_usados"`
	PaymentMethods  []MethodBreakdown `json:"metodos_pago"`
	SaleDetails     []SaleDetail      `json:"ventas_detalle"`
	WeeklyRevenue   []WeekRevenue     `json:"ganancias_semana"`
}

func zeroReport() Report {
	return Report{
		PaymentMethods: []MethodBreakdown{},
		SaleDetails:    []SaleDetail{},
		WeeklyRevenue:  []WeekRevenue{},
	}
}
