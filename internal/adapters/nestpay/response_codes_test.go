package nestpay

import (
	"testing"

	pkgerrors "github.com/nestpaykit/payment-service/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLookupResponseCode(t *testing.T) {
	tests := []struct {
		code     string
		known    bool
		approved bool
		declined bool
		retry    bool
		category pkgerrors.ErrorCategory
	}{
		{code: "00", known: true, approved: true, category: pkgerrors.CategoryApproved},
		{code: "34", known: true, declined: true, category: pkgerrors.CategoryDuplicate},
		{code: "41", known: true, declined: true, category: pkgerrors.CategoryFraud},
		{code: "51", known: true, declined: true, retry: true, category: pkgerrors.CategoryInsufficientFunds},
		{code: "52", known: true, declined: true, category: pkgerrors.CategoryInvalidRequest},
		{code: "54", known: true, declined: true, category: pkgerrors.CategoryExpiredCard},
		{code: "57", known: true, declined: true, retry: true, category: pkgerrors.CategoryInvalidCard},
		{code: "61", known: true, declined: true, retry: true, category: pkgerrors.CategoryDeclined},
		{code: "62", known: true, declined: true, category: pkgerrors.CategoryInvalidCard},
		{code: "63", known: true, declined: true, category: pkgerrors.CategoryFraud},
		{code: "99", known: true, declined: true, retry: true, category: pkgerrors.CategorySystemError},
		{code: "77", known: false, declined: true, category: pkgerrors.CategoryDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			info, known := LookupResponseCode(tt.code)
			assert.Equal(t, tt.known, known)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.approved, info.IsApproved)
			assert.Equal(t, tt.declined, info.IsDeclined)
			assert.Equal(t, tt.retry, info.IsRetriable)
			assert.Equal(t, tt.category, info.Category)
		})
	}
}

func TestLookupResponseCodeUnknownHasNoCanonicalMessage(t *testing.T) {
	info, known := LookupResponseCode("XX")
	assert.False(t, known)
	assert.Empty(t, info.Message)
}

func TestToPaymentError(t *testing.T) {
	info, _ := LookupResponseCode("51")
	perr := info.ToPaymentError("Not sufficient funds")

	assert.Equal(t, "51", perr.Code)
	assert.Equal(t, "Yetersiz bakiye", perr.Message)
	assert.Equal(t, "Not sufficient funds", perr.GatewayMessage)
	assert.True(t, perr.IsRetriable)
	assert.Equal(t, pkgerrors.CategoryInsufficientFunds, perr.Category)
}
