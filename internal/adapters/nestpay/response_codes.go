package nestpay

import (
	pkgerrors "github.com/nestpaykit/payment-service/pkg/errors"
)

// generalErrorCode is the gateway's own "general error, retry" sentinel,
// substituted when a reply carries no ProcReturnCode at all
const generalErrorCode = "99"

// ResponseCodeInfo describes a gateway proc return code. Message is the
// canonical localized text that replaces whatever the gateway sent: banks
// sharing this protocol family return wildly inconsistent ErrMsg strings for
// the same code, so the table wins.
type ResponseCodeInfo struct {
	Code        string
	Display     string
	Description string
	IsApproved  bool
	IsDeclined  bool
	IsRetriable bool
	Category    pkgerrors.ErrorCategory
	Message     string
}

// Known business outcome codes. Codes absent from this table keep the
// gateway's own message text.
var responseCodes = map[string]ResponseCodeInfo{
	"00": {
		Code:        "00",
		Display:     "APPROVED",
		Description: "Transaction approved",
		IsApproved:  true,
		Category:    pkgerrors.CategoryApproved,
		Message:     "İşlem onaylandı",
	},
	"34": {
		Code:        "34",
		Display:     "DUPLICATE ORDER",
		Description: "Order id was already used",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDuplicate,
		Message:     "Mükerrer sipariş",
	},
	"41": {
		Code:        "41",
		Display:     "LOST/STOLEN CARD",
		Description: "Card reported lost or stolen",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryFraud,
		Message:     "Kayıp veya çalıntı kart",
	},
	"51": {
		Code:        "51",
		Display:     "INSUFF FUNDS",
		Description: "Insufficient funds in account",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryInsufficientFunds,
		Message:     "Yetersiz bakiye",
	},
	"52": {
		Code:        "52",
		Display:     "INVALID INSTALMENT",
		Description: "Installment count not allowed for this card",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryInvalidRequest,
		Message:     "Geçersiz taksit sayısı",
	},
	"54": {
		Code:        "54",
		Display:     "EXPIRED CARD",
		Description: "Card expiry date has passed",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryExpiredCard,
		Message:     "Kartın son kullanma tarihi geçmiş",
	},
	"57": {
		Code:        "57",
		Display:     "INVALID CVC2",
		Description: "Security code verification failed",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryInvalidCard,
		Message:     "Geçersiz güvenlik kodu",
	},
	"61": {
		Code:        "61",
		Display:     "LIMIT EXCEEDED",
		Description: "Withdrawal amount limit exceeded",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategoryDeclined,
		Message:     "İşlem limiti aşıldı",
	},
	"62": {
		Code:        "62",
		Display:     "RESTRICTED CARD",
		Description: "Card restricted for this kind of use",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryInvalidCard,
		Message:     "Kısıtlı kart",
	},
	"63": {
		Code:        "63",
		Display:     "SECURITY VIOLATION",
		Description: "Security rules violated",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryFraud,
		Message:     "Güvenlik ihlali",
	},
	generalErrorCode: {
		Code:        generalErrorCode,
		Display:     "GENERAL ERROR",
		Description: "General error, transaction may be retried",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategorySystemError,
		Message:     "Genel hata, tekrar deneyin",
	},
}

// LookupResponseCode returns the table entry for a gateway proc return code.
// Unknown codes get a declined default with no canonical message, so the
// gateway's own text passes through.
func LookupResponseCode(code string) (ResponseCodeInfo, bool) {
	if info, ok := responseCodes[code]; ok {
		return info, true
	}
	return ResponseCodeInfo{
		Code:        code,
		Display:     "UNKNOWN",
		Description: "Unknown response code",
		IsDeclined:  true,
		Category:    pkgerrors.CategoryDeclined,
	}, false
}

// ToPaymentError converts a response code entry to a PaymentError carrying
// the gateway's raw message alongside the canonical one
func (r ResponseCodeInfo) ToPaymentError(gatewayMessage string) *pkgerrors.PaymentError {
	return &pkgerrors.PaymentError{
		Code:           r.Code,
		Message:        r.Message,
		GatewayMessage: gatewayMessage,
		IsRetriable:    r.IsRetriable,
		Category:       r.Category,
	}
}
