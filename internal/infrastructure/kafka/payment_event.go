package publisher

type PaymentEvent struct {
	OrderID        int64   `json:"order_id"`
	TransactionRef string  `json:"transaction_ref"`
	Outcome        string  `json:"outcome"`
	ResultCode     string  `json:"result_code"`
	NetAmount      float64 `json:"net_amount"`
	Currency       string  `json:"currency"`
}
