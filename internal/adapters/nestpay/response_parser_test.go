package nestpay

import (
	"testing"

	"github.com/nestpaykit/payment-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseApprovedResponse(t *testing.T) {
	raw := []byte(`<CC5Response>
		<OrderId>12345</OrderId>
		<Response>Approved</Response>
		<ProcReturnCode>00</ProcReturnCode>
		<AuthCode>AUTH42</AuthCode>
		<HostRefNum>REF77</HostRefNum>
		<TransId>TX99</TransId>
		<Extra><TranDate>20260830 10:15:00</TranDate></Extra>
	</CC5Response>`)

	resp := parseResponse(raw, "")

	assert.Equal(t, domain.StatusApproved, resp.Status)
	assert.Equal(t, "12345", resp.OrderID)
	assert.Equal(t, "00", resp.ResponseCode)
	assert.Equal(t, "AUTH42", resp.AuthCode)
	assert.Equal(t, "REF77", resp.HostRefNum)
	assert.Equal(t, "TX99", resp.TransactionID)
	assert.Equal(t, "20260830 10:15:00", resp.TranDate)
}

func TestParseDeclinedKnownCodeUsesCanonicalMessage(t *testing.T) {
	raw := []byte(`<CC5Response>
		<OrderId>12345</OrderId>
		<Response>Declined</Response>
		<ProcReturnCode>51</ProcReturnCode>
		<ErrMsg>Not sufficient funds</ErrMsg>
	</CC5Response>`)

	resp := parseResponse(raw, "")

	assert.Equal(t, domain.StatusDeclined, resp.Status)
	assert.Equal(t, "51", resp.ResponseCode)
	assert.Equal(t, "Yetersiz bakiye", resp.ResponseMessage)
}

func TestParseDeclinedUnknownCodeKeepsGatewayMessage(t *testing.T) {
	raw := []byte(`<CC5Response>
		<OrderId>12345</OrderId>
		<Response>Declined</Response>
		<ProcReturnCode>96</ProcReturnCode>
		<ErrMsg>Issuer switch inoperative</ErrMsg>
	</CC5Response>`)

	resp := parseResponse(raw, "")

	assert.Equal(t, domain.StatusDeclined, resp.Status)
	assert.Equal(t, "96", resp.ResponseCode)
	assert.Equal(t, "Issuer switch inoperative", resp.ResponseMessage)
}

func TestParseMissingProcReturnCode(t *testing.T) {
	raw := []byte(`<CC5Response>
		<Response>Error</Response>
		<ErrMsg>Something broke</ErrMsg>
	</CC5Response>`)

	resp := parseResponse(raw, "FALLBACK1")

	assert.Equal(t, domain.StatusDeclined, resp.Status)
	assert.Equal(t, "99", resp.ResponseCode)
	assert.Equal(t, "FALLBACK1", resp.OrderID)
	// The general error code is in the canonical table, so its text wins
	assert.Equal(t, "Genel hata, tekrar deneyin", resp.ResponseMessage)
}

func TestParseMessageFallsBackToResponseToken(t *testing.T) {
	raw := []byte(`<CC5Response>
		<OrderId>12345</OrderId>
		<Response>Error</Response>
		<ProcReturnCode>98</ProcReturnCode>
	</CC5Response>`)

	resp := parseResponse(raw, "")

	assert.Equal(t, "Error", resp.ResponseMessage)
}

func TestParseMalformedXML(t *testing.T) {
	resp := parseResponse([]byte(`<CC5Response><OrderId>12345`), "FALLBACK1")

	assert.Equal(t, domain.StatusError, resp.Status)
	assert.Equal(t, string(domain.ErrorCodeSystemError), resp.ResponseCode)
	assert.Equal(t, "FALLBACK1", resp.OrderID)
	assert.NotEmpty(t, resp.ResponseMessage)
}

func TestParseApprovedIgnoresCanonicalOverride(t *testing.T) {
	// Code 00 is in the table but the reply is approved, so no decline text
	// leaks in
	raw := []byte(`<CC5Response>
		<OrderId>12345</OrderId>
		<Response>Approved</Response>
		<ProcReturnCode>00</ProcReturnCode>
		<ErrMsg></ErrMsg>
	</CC5Response>`)

	resp := parseResponse(raw, "")

	assert.Equal(t, domain.StatusApproved, resp.Status)
	assert.Equal(t, "Approved", resp.ResponseMessage)
}
