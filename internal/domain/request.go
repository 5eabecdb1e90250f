package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card holds the cardholder data for a monetary transaction. All fields are
// blank on void/refund/inquiry requests and on the authorization that follows
// a successful 3-D Secure callback.
type Card struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"` // two digits, "01".."12"
	ExpiryYear  string `json:"expiry_year"`  // two digits, e.g. "27"
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// Address is a billing or shipping address block. Company, Street2 and
// Street3 are optional; the remaining fields are emitted whenever the block
// itself is present.
type Address struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	Street3    string `json:"street3,omitempty"`
	City       string `json:"city"`
	StateProv  string `json:"state_prov"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	TelVoice   string `json:"tel_voice"`
}

// OrderItem is a single line of the optional order item list
type OrderItem struct {
	ItemNumber  int             `json:"item_number"`
	ProductCode string          `json:"product_code"`
	Qty         int             `json:"qty"`
	Desc        string          `json:"desc"`
	ID          string          `json:"id"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// ExtraField is a caller-supplied protocol extension. Each entry is replayed
// into the request document as a same-named XML element, in insertion order.
// The key must be a valid XML element name; only values are escaped.
type ExtraField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ThreeDSecureProof carries the proof-of-authentication values returned by
// the card issuer after a successful 3-D Secure check
type ThreeDSecureProof struct {
	MD   string `json:"md"`
	XID  string `json:"xid"`
	ECI  string `json:"eci"`
	CAVV string `json:"cavv"`
}

// TransactionRequest is a single gateway transaction. Use the New*Request
// constructors: they pin the transaction kind and reject fields the kind does
// not carry, so field presence never has to be re-checked downstream.
type TransactionRequest struct {
	Type        TransactionType `json:"type"`
	OrderID     string          `json:"order_id,omitempty"`
	TransID     string          `json:"trans_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency,omitempty"`
	Installment int             `json:"installment,omitempty"`
	Card        Card            `json:"card"`

	Email       string `json:"email,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	GroupID     string `json:"group_id,omitempty"`
	Description string `json:"description,omitempty"`

	// 3-D Secure proof fields, only set on a post-authentication Auth
	PayerSecurityLevel      string `json:"payer_security_level,omitempty"`
	PayerTxnID              string `json:"payer_txn_id,omitempty"`
	PayerAuthenticationCode string `json:"payer_authentication_code,omitempty"`

	BillTo     *Address     `json:"bill_to,omitempty"`
	ShipTo     *Address     `json:"ship_to,omitempty"`
	OrderItems []OrderItem  `json:"order_items,omitempty"`
	Extra      []ExtraField `json:"extra,omitempty"`
}

// AddExtra appends a protocol extension field, preserving insertion order
func (r *TransactionRequest) AddExtra(key, value string) {
	r.Extra = append(r.Extra, ExtraField{Key: key, Value: value})
}

// NewOrderID generates a fresh order identifier: 32 lowercase hex characters.
// Collisions are treated as negligible; callers needing hard uniqueness must
// supply their own identifiers.
func NewOrderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func newMonetaryRequest(t TransactionType, amount decimal.Decimal, currency Currency, card Card) (*TransactionRequest, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		return nil, ErrInvalidCurrency
	}
	return &TransactionRequest{
		Type:     t,
		Amount:   amount,
		Currency: currency,
		Card:     card,
	}, nil
}

// NewPaymentRequest builds a direct sale (auth + capture in one step)
func NewPaymentRequest(amount decimal.Decimal, currency Currency, card Card) (*TransactionRequest, error) {
	if card.Number == "" {
		return nil, ErrCardRequired
	}
	return newMonetaryRequest(TransactionTypePayment, amount, currency, card)
}

// NewAuthRequest builds an authorization without capture
func NewAuthRequest(amount decimal.Decimal, currency Currency, card Card) (*TransactionRequest, error) {
	if card.Number == "" {
		return nil, ErrCardRequired
	}
	return newMonetaryRequest(TransactionTypeAuth, amount, currency, card)
}

// NewPreAuthRequest builds a pre-authorization
func NewPreAuthRequest(amount decimal.Decimal, currency Currency, card Card) (*TransactionRequest, error) {
	if card.Number == "" {
		return nil, ErrCardRequired
	}
	return newMonetaryRequest(TransactionTypePreAuth, amount, currency, card)
}

// NewPostAuthRequest captures a previous pre-authorization identified by its
// order id. No card data is sent.
func NewPostAuthRequest(orderID string, amount decimal.Decimal, currency Currency) (*TransactionRequest, error) {
	if orderID == "" {
		return nil, ErrMissingReference
	}
	req, err := newMonetaryRequest(TransactionTypePostAuth, amount, currency, Card{})
	if err != nil {
		return nil, err
	}
	req.OrderID = orderID
	return req, nil
}

// NewVoidRequest cancels an unsettled transaction by order id
func NewVoidRequest(orderID string) (*TransactionRequest, error) {
	if orderID == "" {
		return nil, ErrMissingReference
	}
	return &TransactionRequest{Type: TransactionTypeVoid, OrderID: orderID}, nil
}

// NewVoidByTransIDRequest cancels an unsettled transaction by the gateway's
// transaction id, for callers that never stored the order id
func NewVoidByTransIDRequest(transID string) (*TransactionRequest, error) {
	if transID == "" {
		return nil, ErrMissingReference
	}
	return &TransactionRequest{Type: TransactionTypeVoid, TransID: transID}, nil
}

// NewRefundRequest returns funds for a settled order. No card data is sent.
func NewRefundRequest(orderID string, amount decimal.Decimal, currency Currency) (*TransactionRequest, error) {
	if orderID == "" {
		return nil, ErrMissingReference
	}
	req, err := newMonetaryRequest(TransactionTypeRefund, amount, currency, Card{})
	if err != nil {
		return nil, err
	}
	req.OrderID = orderID
	return req, nil
}

// NewInquiryRequest queries the state of an existing order
func NewInquiryRequest(orderID string) (*TransactionRequest, error) {
	if orderID == "" {
		return nil, ErrMissingReference
	}
	return &TransactionRequest{Type: TransactionTypeInquiry, OrderID: orderID}, nil
}

// NewSecureAuthRequest builds the authorization that completes a successful
// 3-D Secure flow. Card fields stay blank: the issuer's authentication stands
// in for PAN re-submission, and the proof values travel as protocol extras.
func NewSecureAuthRequest(orderID string, amount decimal.Decimal, currency Currency, proof ThreeDSecureProof) (*TransactionRequest, error) {
	if orderID == "" {
		return nil, ErrMissingReference
	}
	req, err := newMonetaryRequest(TransactionTypeAuth, amount, currency, Card{})
	if err != nil {
		return nil, err
	}
	req.OrderID = orderID
	req.Extra = []ExtraField{
		{Key: "md", Value: proof.MD},
		{Key: "xid", Value: proof.XID},
		{Key: "eci", Value: proof.ECI},
		{Key: "cavv", Value: proof.CAVV},
		{Key: "3d", Value: "true"},
	}
	return req, nil
}
