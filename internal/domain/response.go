package domain

import "github.com/shopspring/decimal"

// PaymentResponse is the normalized outcome of a payment round trip. Every
// operation on the gateway client returns one of these; transport and
// protocol failures are folded in as StatusError rather than surfaced as
// bare errors.
type PaymentResponse struct {
	Status          Status `json:"status"`
	OrderID         string `json:"order_id"`
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	TransactionID   string `json:"transaction_id,omitempty"`
	AuthCode        string `json:"auth_code,omitempty"`
	HostRefNum      string `json:"host_ref_num,omitempty"`
	ProcReturnCode  string `json:"proc_return_code,omitempty"`
	TranDate        string `json:"tran_date,omitempty"`
}

// IsApproved reports whether the gateway approved the transaction
func (r *PaymentResponse) IsApproved() bool {
	return r.Status == StatusApproved
}

// ThreeDSecureRequest initiates a cardholder authentication redirect
type ThreeDSecureRequest struct {
	OrderID     string          `json:"order_id,omitempty"` // generated when empty
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Card        Card            `json:"card"`
	SuccessURL  string          `json:"success_url"`
	FailureURL  string          `json:"failure_url"`
	Installment int             `json:"installment,omitempty"`
	Description string          `json:"description,omitempty"`
	Extra       []ExtraField    `json:"extra,omitempty"`
}

// ThreeDSecureForm holds the nine fields of the auto-submitting form the
// caller's web layer renders towards the issuer's authentication page. The
// field set is the observable contract with the issuer and must not change.
type ThreeDSecureForm struct {
	ClientID  string `json:"clientId"`
	OID       string `json:"oid"`
	Amount    string `json:"amount"`
	OkURL     string `json:"okUrl"`
	FailURL   string `json:"failUrl"`
	Rnd       string `json:"rnd"`
	Hash      string `json:"hash"`
	StoreType string `json:"storetype"`
	Lang      string `json:"lang"`
}

// Values returns the form fields keyed by their wire names
func (f *ThreeDSecureForm) Values() map[string]string {
	return map[string]string{
		"clientId":  f.ClientID,
		"oid":       f.OID,
		"amount":    f.Amount,
		"okUrl":     f.OkURL,
		"failUrl":   f.FailURL,
		"rnd":       f.Rnd,
		"hash":      f.Hash,
		"storetype": f.StoreType,
		"lang":      f.Lang,
	}
}

// ThreeDSecureResponse is the outcome of a 3-D Secure initiation. Pending
// results carry the redirect descriptor; error results carry a code and
// message and nothing else.
type ThreeDSecureResponse struct {
	Status       ThreeDStatus      `json:"status"`
	RedirectURL  string            `json:"redirect_url,omitempty"`
	Form         *ThreeDSecureForm `json:"form,omitempty"`
	ErrorCode    string            `json:"error_code,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// ThreeDSecureCallback is the payload the issuer posts back to the merchant
// after the cardholder authentication attempt
type ThreeDSecureCallback struct {
	OrderID string `json:"oid" form:"oid"`
	Amount  string `json:"amount" form:"amount"`
	Status  string `json:"status" form:"status"` // "success" when authenticated
	MD      string `json:"md" form:"md"`
	XID     string `json:"xid" form:"xid"`
	ECI     string `json:"eci" form:"eci"`
	CAVV    string `json:"cavv" form:"cavv"`
}
