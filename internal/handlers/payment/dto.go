package payment

import (
	"github.com/nestpaykit/payment-service/internal/domain"
	"github.com/shopspring/decimal"
)

type cardDTO struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type addressDTO struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2"`
	Street3    string `json:"street3"`
	City       string `json:"city"`
	StateProv  string `json:"state_prov"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	TelVoice   string `json:"tel_voice"`
}

type orderItemDTO struct {
	ItemNumber  int    `json:"item_number"`
	ProductCode string `json:"product_code"`
	Qty         int    `json:"qty"`
	Desc        string `json:"desc"`
	ID          string `json:"id"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

type extraDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// paymentDTO is the JSON body for sale, auth and preauth requests
type paymentDTO struct {
	OrderID     string         `json:"order_id"`
	Amount      string         `json:"amount" binding:"required"`
	Currency    string         `json:"currency"`
	Installment int            `json:"installment"`
	Card        cardDTO        `json:"card" binding:"required"`
	Email       string         `json:"email"`
	IPAddress   string         `json:"ip_address"`
	GroupID     string         `json:"group_id"`
	Description string         `json:"description"`
	BillTo      *addressDTO    `json:"bill_to"`
	ShipTo      *addressDTO    `json:"ship_to"`
	OrderItems  []orderItemDTO `json:"order_items"`
	Extra       []extraDTO     `json:"extra"`
}

type postAuthDTO struct {
	OrderID  string `json:"order_id" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency"`
}

type refundDTO struct {
	OrderID  string `json:"order_id" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency"`
}

type voidDTO struct {
	OrderID string `json:"order_id"`
	TransID string `json:"trans_id"`
}

type inquiryDTO struct {
	OrderID string `json:"order_id" binding:"required"`
}

type threeDSecureDTO struct {
	OrderID     string  `json:"order_id"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	Card        cardDTO `json:"card"`
	SuccessURL  string  `json:"success_url" binding:"required"`
	FailureURL  string  `json:"failure_url" binding:"required"`
	Installment int     `json:"installment"`
	Description string  `json:"description"`
}

// parseCurrency accepts either an ISO-4217 alpha code or the numeric code
// the gateway uses on the wire. Empty means Turkish lira.
func parseCurrency(s string) domain.Currency {
	switch s {
	case "", "TRY", "949":
		return domain.CurrencyTRY
	case "USD", "840":
		return domain.CurrencyUSD
	case "EUR", "978":
		return domain.CurrencyEUR
	case "GBP", "826":
		return domain.CurrencyGBP
	default:
		return domain.Currency(s)
	}
}

func (d *cardDTO) toDomain() domain.Card {
	return domain.Card{
		Number:      d.Number,
		ExpiryMonth: d.ExpiryMonth,
		ExpiryYear:  d.ExpiryYear,
		CVV:         d.CVV,
		HolderName:  d.HolderName,
	}
}

func (d *addressDTO) toDomain() *domain.Address {
	if d == nil {
		return nil
	}
	return &domain.Address{
		Name:       d.Name,
		Company:    d.Company,
		Street1:    d.Street1,
		Street2:    d.Street2,
		Street3:    d.Street3,
		City:       d.City,
		StateProv:  d.StateProv,
		PostalCode: d.PostalCode,
		Country:    d.Country,
		TelVoice:   d.TelVoice,
	}
}

// apply copies the optional fields of the DTO onto a constructed request
func (d *paymentDTO) apply(req *domain.TransactionRequest) error {
	req.OrderID = d.OrderID
	req.Installment = d.Installment
	req.Email = d.Email
	req.IPAddress = d.IPAddress
	req.GroupID = d.GroupID
	req.Description = d.Description
	req.BillTo = d.BillTo.toDomain()
	req.ShipTo = d.ShipTo.toDomain()
	for _, item := range d.OrderItems {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return err
		}
		total, err := decimal.NewFromString(item.Total)
		if err != nil {
			return err
		}
		req.OrderItems = append(req.OrderItems, domain.OrderItem{
			ItemNumber:  item.ItemNumber,
			ProductCode: item.ProductCode,
			Qty:         item.Qty,
			Desc:        item.Desc,
			ID:          item.ID,
			Price:       price,
			Total:       total,
		})
	}
	for _, extra := range d.Extra {
		req.AddExtra(extra.Key, extra.Value)
	}
	return nil
}
