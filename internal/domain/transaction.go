package domain

// TransactionType identifies a gateway transaction kind. The value is the
// exact wire token emitted in the CC5Request Type element.
type TransactionType string

const (
	TransactionTypePayment  TransactionType = "Payment"  // direct sale (auth + capture)
	TransactionTypeAuth     TransactionType = "Auth"     // authorization
	TransactionTypePreAuth  TransactionType = "PreAuth"  // pre-authorization
	TransactionTypePostAuth TransactionType = "PostAuth" // capture of a pre-authorization
	TransactionTypeVoid     TransactionType = "Void"     // cancel before settlement
	TransactionTypeRefund   TransactionType = "Credit"   // refund a settled transaction
	TransactionTypeInquiry  TransactionType = "Inquiry"  // order status inquiry
)

// Monetary reports whether the transaction kind carries an amount and
// currency on the wire. Void and Inquiry reference an existing order only.
func (t TransactionType) Monetary() bool {
	switch t {
	case TransactionTypePayment, TransactionTypeAuth, TransactionTypePreAuth,
		TransactionTypePostAuth, TransactionTypeRefund:
		return true
	}
	return false
}

// Status represents the normalized outcome of a payment round trip.
// Every operation terminates in exactly one of these; there is no retry or
// second round trip behind a single call.
type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
	StatusError    Status = "ERROR"
	StatusPending  Status = "PENDING"
)

// ThreeDStatus represents the outcome of the 3-D Secure initiation step
type ThreeDStatus string

const (
	ThreeDStatusSuccess ThreeDStatus = "3D_SUCCESS"
	ThreeDStatusError   ThreeDStatus = "3D_ERROR"
	ThreeDStatusPending ThreeDStatus = "3D_PENDING"
)

// Currency is an ISO-4217 numeric currency code in the textual form the
// gateway expects (e.g. "949" for Turkish lira)
type Currency string

const (
	CurrencyTRY Currency = "949"
	CurrencyUSD Currency = "840"
	CurrencyEUR Currency = "978"
	CurrencyGBP Currency = "826"
)
