package domain

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCard = Card{
	Number:      "4444333322221111",
	ExpiryMonth: "12",
	ExpiryYear:  "27",
	CVV:         "123",
	HolderName:  "Test User",
}

func TestNewOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "order ids must not repeat")
		seen[id] = true
	}
}

func TestNewPaymentRequest(t *testing.T) {
	req, err := NewPaymentRequest(decimal.RequireFromString("100.50"), CurrencyTRY, testCard)
	require.NoError(t, err)

	assert.Equal(t, TransactionTypePayment, req.Type)
	assert.Equal(t, CurrencyTRY, req.Currency)
	assert.Equal(t, testCard, req.Card)
	assert.Empty(t, req.OrderID)
}

func TestMonetaryRequestValidation(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency Currency
		card     Card
		wantErr  error
	}{
		{name: "zero amount", amount: "0", currency: CurrencyTRY, card: testCard, wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: "-5", currency: CurrencyTRY, card: testCard, wantErr: ErrInvalidAmount},
		{name: "three fractional digits", amount: "10.123", currency: CurrencyTRY, card: testCard, wantErr: ErrInvalidAmount},
		{name: "missing currency", amount: "10", currency: "", card: testCard, wantErr: ErrInvalidCurrency},
		{name: "missing card", amount: "10", currency: CurrencyTRY, card: Card{}, wantErr: ErrCardRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPaymentRequest(decimal.RequireFromString(tt.amount), tt.currency, tt.card)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReferenceOnlyRequests(t *testing.T) {
	void, err := NewVoidRequest("ORDER1")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeVoid, void.Type)
	assert.False(t, void.Type.Monetary())
	assert.Empty(t, void.Card.Number)

	byTrans, err := NewVoidByTransIDRequest("TX42")
	require.NoError(t, err)
	assert.Equal(t, "TX42", byTrans.TransID)
	assert.Empty(t, byTrans.OrderID)

	inquiry, err := NewInquiryRequest("ORDER1")
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeInquiry, inquiry.Type)

	_, err = NewVoidRequest("")
	assert.ErrorIs(t, err, ErrMissingReference)
	_, err = NewInquiryRequest("")
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestNewRefundRequest(t *testing.T) {
	req, err := NewRefundRequest("ORDER1", decimal.RequireFromString("25.00"), CurrencyTRY)
	require.NoError(t, err)

	// Refunds use the Credit wire token and carry no card data
	assert.Equal(t, TransactionTypeRefund, req.Type)
	assert.Equal(t, "Credit", string(req.Type))
	assert.Empty(t, req.Card.Number)
	assert.Equal(t, "ORDER1", req.OrderID)
}

func TestNewSecureAuthRequest(t *testing.T) {
	req, err := NewSecureAuthRequest("ORDER1", decimal.RequireFromString("100.5"), CurrencyTRY, ThreeDSecureProof{
		MD:   "md-token",
		XID:  "xid-token",
		ECI:  "05",
		CAVV: "cavv-token",
	})
	require.NoError(t, err)

	assert.Equal(t, TransactionTypeAuth, req.Type)
	assert.Empty(t, req.Card.Number, "post-3DS authorization must not resend the PAN")
	assert.Equal(t, []ExtraField{
		{Key: "md", Value: "md-token"},
		{Key: "xid", Value: "xid-token"},
		{Key: "eci", Value: "05"},
		{Key: "cavv", Value: "cavv-token"},
		{Key: "3d", Value: "true"},
	}, req.Extra)
}

func TestAddExtraPreservesOrder(t *testing.T) {
	req, err := NewInquiryRequest("ORDER1")
	require.NoError(t, err)

	req.AddExtra("b", "2")
	req.AddExtra("a", "1")
	req.AddExtra("c", "3")

	keys := make([]string, 0, len(req.Extra))
	for _, f := range req.Extra {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}
