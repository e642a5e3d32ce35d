package billing

// OrderResult is what checkout returns to the client. Free is set when the
// computed amount was zero and the subscription was activated without
// contacting the gateway; in that case the other fields are empty.
type OrderResult struct {
	Free     bool   `json:"free"`
	OrderID  string `json:"order_id,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	KeyID    string `json:"key_id,omitempty"`
}

// VerifyInput carries the signed receipt the client brings back from the
// payment gateway after checkout.
type VerifyInput struct {
	OrderID   string
	PaymentID string
	Signature string
}
