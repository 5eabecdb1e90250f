package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentResponseIsApproved(t *testing.T) {
	assert.True(t, (&PaymentResponse{Status: StatusApproved}).IsApproved())
	assert.False(t, (&PaymentResponse{Status: StatusDeclined}).IsApproved())
	assert.False(t, (&PaymentResponse{Status: StatusError}).IsApproved())
}

func TestThreeDSecureFormValues(t *testing.T) {
	form := &ThreeDSecureForm{
		ClientID:  "700100",
		OID:       "ORDER1",
		Amount:    "100.5",
		OkURL:     "https://ok.example/cb",
		FailURL:   "https://fail.example/cb",
		Rnd:       "1700000000000",
		Hash:      "aGFzaA==",
		StoreType: "3d",
		Lang:      "tr",
	}

	assert.Equal(t, map[string]string{
		"clientId":  "700100",
		"oid":       "ORDER1",
		"amount":    "100.5",
		"okUrl":     "https://ok.example/cb",
		"failUrl":   "https://fail.example/cb",
		"rnd":       "1700000000000",
		"hash":      "aGFzaA==",
		"storetype": "3d",
		"lang":      "tr",
	}, form.Values())
}
