package model

import "testing"

func TestCanTransitionHappyPath(t *testing.T) {
	path := []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusPaymentUploaded,
		OrderStatusPaymentVerified,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		if !CanTransition(path[i], path[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", path[i], path[i+1])
		}
	}
}

func TestCanTransitionFromTerminal(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled, OrderStatusRejected} {
		for _, to := range []OrderStatus{OrderStatusPendingPayment, OrderStatusPaymentVerified, OrderStatusCancelled, OrderStatusRejected} {
			if CanTransition(from, to) {
				t.Fatalf("expected %s -> %s to be denied", from, to)
			}
		}
	}
}

func TestCancelAndRejectReachableFromNonTerminal(t *testing.T) {
	nonTerminal := []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusPaymentUploaded,
		OrderStatusPaymentVerified,
		OrderStatusProcessing,
		OrderStatusShipped,
	}
	for _, from := range nonTerminal {
		if !CanTransition(from, OrderStatusCancelled) {
			t.Fatalf("expected %s -> cancelled to be allowed", from)
		}
		if !CanTransition(from, OrderStatusRejected) {
			t.Fatalf("expected %s -> rejected to be allowed", from)
		}
	}
}

func TestCanTransitionSkippingStages(t *testing.T) {
	if CanTransition(OrderStatusPendingPayment, OrderStatusProcessing) {
		t.Fatal("pending_payment must not jump straight to processing")
	}
	if CanTransition(OrderStatusPaymentVerified, OrderStatusDelivered) {
		t.Fatal("payment_verified must not jump straight to delivered")
	}
	if !CanTransition(OrderStatusPendingPayment, OrderStatusPaymentVerified) {
		t.Fatal("approval directly from pending_payment must be allowed")
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
		OrderStatusRejected:  true,
	}
	all := []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusPaymentUploaded,
		OrderStatusPaymentVerified,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRejected,
	}
	for _, s := range all {
		if s.IsTerminal() != terminal[s] {
			t.Fatalf("IsTerminal(%s) = %v, want %v", s, s.IsTerminal(), terminal[s])
		}
	}
}

func TestHoldsStock(t *testing.T) {
	holding := map[OrderStatus]bool{
		OrderStatusPendingPayment:  true,
		OrderStatusPaymentUploaded: true,
	}
	all := []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusPaymentUploaded,
		OrderStatusPaymentVerified,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRejected,
	}
	for _, s := range all {
		if s.HoldsStock() != holding[s] {
			t.Fatalf("HoldsStock(%s) = %v, want %v", s, s.HoldsStock(), holding[s])
		}
	}
}
