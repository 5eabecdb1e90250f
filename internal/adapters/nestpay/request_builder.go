package nestpay

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/nestpaykit/payment-service/internal/domain"
)

// xmlEscaper neutralizes the characters that are structurally significant in
// XML element content. Extra values are the one place caller-controlled text
// enters the document, so escaping happens here rather than by validation.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// requestBuilder serializes transaction requests into CC5Request documents
// using the fixed merchant credentials
type requestBuilder struct {
	username string
	password string
	clientID string
}

// Build emits the CC5Request document for req. Element order is fixed:
// credentials, type, identifiers, amount/currency, card data, installment,
// descriptive fields, 3-D Secure proof, addresses, order items, extras.
// Optional elements are omitted entirely, never emitted empty.
func (b *requestBuilder) Build(req *domain.TransactionRequest) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n<CC5Request>")

	writeElem(&buf, "Name", b.username)
	writeElem(&buf, "Password", b.password)
	writeElem(&buf, "ClientId", b.clientID)
	writeElem(&buf, "Type", string(req.Type))

	if req.OrderID != "" {
		writeElem(&buf, "OrderId", req.OrderID)
	}
	if req.TransID != "" {
		writeElem(&buf, "TransId", req.TransID)
	}

	if req.Type.Monetary() && req.Amount.IsPositive() {
		writeElem(&buf, "Amount", domain.FormatAmount(req.Amount))
		writeElem(&buf, "Currency", string(req.Currency))
	}

	if req.Card.Number != "" {
		writeElem(&buf, "Number", req.Card.Number)
	}
	if req.Card.ExpiryMonth != "" {
		writeElem(&buf, "Expires", req.Card.ExpiryMonth+"/"+req.Card.ExpiryYear)
	}
	if req.Card.CVV != "" {
		writeElem(&buf, "Cvv2Val", req.Card.CVV)
	}

	// A single installment is the same as none and is not sent
	if req.Installment > 1 {
		writeElem(&buf, "Instalment", strconv.Itoa(req.Installment))
	}

	if req.Email != "" {
		writeElem(&buf, "Email", req.Email)
	}
	if req.IPAddress != "" {
		writeElem(&buf, "IPAddress", req.IPAddress)
	}
	if req.GroupID != "" {
		writeElem(&buf, "GroupId", req.GroupID)
	}
	if req.Description != "" {
		writeElem(&buf, "Description", req.Description)
	}

	if req.PayerSecurityLevel != "" {
		writeElem(&buf, "PayerSecurityLevel", req.PayerSecurityLevel)
	}
	if req.PayerTxnID != "" {
		writeElem(&buf, "PayerTxnId", req.PayerTxnID)
	}
	if req.PayerAuthenticationCode != "" {
		writeElem(&buf, "PayerAuthenticationCode", req.PayerAuthenticationCode)
	}

	writeAddress(&buf, "BillTo", req.BillTo)
	writeAddress(&buf, "ShipTo", req.ShipTo)

	if len(req.OrderItems) > 0 {
		buf.WriteString("<OrderItemList>")
		for _, item := range req.OrderItems {
			writeOrderItem(&buf, item)
		}
		buf.WriteString("</OrderItemList>")
	}

	for _, extra := range req.Extra {
		writeElem(&buf, extra.Key, extra.Value)
	}

	buf.WriteString("</CC5Request>")
	return buf.Bytes()
}

func writeElem(buf *bytes.Buffer, name, value string) {
	buf.WriteByte('<')
	buf.WriteString(name)
	buf.WriteByte('>')
	xmlEscaper.WriteString(buf, value)
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

func writeAddress(buf *bytes.Buffer, name string, addr *domain.Address) {
	if addr == nil {
		return
	}
	buf.WriteByte('<')
	buf.WriteString(name)
	buf.WriteByte('>')
	writeElem(buf, "Name", addr.Name)
	if addr.Company != "" {
		writeElem(buf, "Company", addr.Company)
	}
	writeElem(buf, "Street1", addr.Street1)
	if addr.Street2 != "" {
		writeElem(buf, "Street2", addr.Street2)
	}
	if addr.Street3 != "" {
		writeElem(buf, "Street3", addr.Street3)
	}
	writeElem(buf, "City", addr.City)
	writeElem(buf, "StateProv", addr.StateProv)
	writeElem(buf, "PostalCode", addr.PostalCode)
	writeElem(buf, "Country", addr.Country)
	writeElem(buf, "TelVoice", addr.TelVoice)
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

func writeOrderItem(buf *bytes.Buffer, item domain.OrderItem) {
	buf.WriteString("<OrderItem>")
	writeElem(buf, "ItemNumber", strconv.Itoa(item.ItemNumber))
	writeElem(buf, "ProductCode", item.ProductCode)
	writeElem(buf, "Qty", strconv.Itoa(item.Qty))
	writeElem(buf, "Desc", item.Desc)
	writeElem(buf, "Id", item.ID)
	writeElem(buf, "Price", domain.FormatAmount(item.Price))
	writeElem(buf, "Total", domain.FormatAmount(item.Total))
	buf.WriteString("</OrderItem>")
}
