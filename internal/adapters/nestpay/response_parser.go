package nestpay

import (
	"encoding/xml"

	"github.com/nestpaykit/payment-service/internal/domain"
)

// cc5Response mirrors the gateway's CC5Response reply document. Everything
// except OrderId, Response and ProcReturnCode is optional and banks omit
// fields freely.
type cc5Response struct {
	XMLName        xml.Name `xml:"CC5Response"`
	OrderID        string   `xml:"OrderId"`
	Response       string   `xml:"Response"`
	ProcReturnCode string   `xml:"ProcReturnCode"`
	AuthCode       string   `xml:"AuthCode"`
	HostRefNum     string   `xml:"HostRefNum"`
	TransID        string   `xml:"TransId"`
	ErrMsg         string   `xml:"ErrMsg"`
	Extra          struct {
		TranDate string `xml:"TranDate"`
	} `xml:"Extra"`
}

// approvedToken is the exact outcome token the gateway uses for an approved
// transaction; any other value, including absence, is a decline
const approvedToken = "Approved"

// parseResponse converts raw reply bytes into a normalized PaymentResponse.
// A reply that cannot be parsed is a protocol error: the round trip produced
// no trustworthy business outcome, so it surfaces exactly like a transport
// failure. fallbackOrderID fills the order id when the reply has none.
func parseResponse(raw []byte, fallbackOrderID string) *domain.PaymentResponse {
	var reply cc5Response
	if err := xml.Unmarshal(raw, &reply); err != nil {
		return errorResponse(fallbackOrderID, domain.ErrorCodeSystemError, err.Error())
	}

	status := domain.StatusDeclined
	if reply.Response == approvedToken {
		status = domain.StatusApproved
	}

	code := reply.ProcReturnCode
	if code == "" {
		code = generalErrorCode
	}

	message := reply.ErrMsg
	if message == "" {
		message = reply.Response
	}
	// Canonical text takes precedence over the bank's own wording for known
	// business declines
	if info, known := LookupResponseCode(code); known && info.IsDeclined && status == domain.StatusDeclined {
		message = info.Message
	}

	orderID := reply.OrderID
	if orderID == "" {
		orderID = fallbackOrderID
	}

	return &domain.PaymentResponse{
		Status:          status,
		OrderID:         orderID,
		ResponseCode:    code,
		ResponseMessage: message,
		TransactionID:   reply.TransID,
		AuthCode:        reply.AuthCode,
		HostRefNum:      reply.HostRefNum,
		ProcReturnCode:  code,
		TranDate:        reply.Extra.TranDate,
	}
}

// errorResponse builds the terminal ERROR outcome used for transport,
// protocol and validation failures
func errorResponse(orderID string, code domain.ErrorCode, message string) *domain.PaymentResponse {
	return &domain.PaymentResponse{
		Status:          domain.StatusError,
		OrderID:         orderID,
		ResponseCode:    string(code),
		ResponseMessage: message,
	}
}
