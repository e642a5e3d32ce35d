package billing

import (
	"strings"
	"testing"
)

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "top-secret"
	sig := PaymentSignature("order_123", "pay_456", secret)

	if !VerifyPaymentSignature("order_123", "pay_456", sig, secret) {
		t.Fatalf("expected signature to validate")
	}
	if !VerifyPaymentSignature("order_123", "pay_456", strings.ToUpper(sig), secret) {
		t.Fatalf("expected upper-cased hex signature to validate")
	}
	if VerifyPaymentSignature("order_123", "pay_456", sig, "wrong-secret") {
		t.Fatalf("expected wrong secret to fail")
	}
	if VerifyPaymentSignature("order_999", "pay_456", sig, secret) {
		t.Fatalf("expected mismatched order id to fail")
	}
	if VerifyPaymentSignature("order_123", "pay_456", "deadbeef", secret) {
		t.Fatalf("expected tampered signature to fail")
	}
	if VerifyPaymentSignature("order_123", "pay_456", "not-hex", secret) {
		t.Fatalf("expected non-hex signature to fail")
	}
	if VerifyPaymentSignature("order_123", "pay_456", "", secret) {
		t.Fatalf("expected empty signature to fail")
	}
	if VerifyPaymentSignature("order_123", "pay_456", sig, "") {
		t.Fatalf("expected missing secret to fail")
	}
}
