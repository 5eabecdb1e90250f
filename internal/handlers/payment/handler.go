package payment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nestpaykit/payment-service/internal/domain"
	"github.com/nestpaykit/payment-service/pkg/observability"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gateway is the slice of the NestPay client the handlers need; narrowed to
// an interface so tests can stub the gateway without network access
type Gateway interface {
	Process(ctx context.Context, req *domain.TransactionRequest) *domain.PaymentResponse
	Initiate3DSecure(req *domain.ThreeDSecureRequest) *domain.ThreeDSecureResponse
	Complete3DSecure(ctx context.Context, cb *domain.ThreeDSecureCallback) *domain.PaymentResponse
	Refund(ctx context.Context, orderID string, amount decimal.Decimal, currency domain.Currency) *domain.PaymentResponse
	Void(ctx context.Context, orderID string) *domain.PaymentResponse
	VoidTransaction(ctx context.Context, transID string) *domain.PaymentResponse
	Inquire(ctx context.Context, orderID string) *domain.PaymentResponse
}

// Handler exposes the gateway client over HTTP
type Handler struct {
	gateway Gateway
	logger  *zap.Logger
}

// NewHandler creates a payment handler
func NewHandler(gateway Gateway, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{gateway: gateway, logger: logger}
}

// Register mounts the payment routes on the given router group
func (h *Handler) Register(r *gin.RouterGroup) {
	r.POST("/payments", h.pay(domain.TransactionTypePayment))
	r.POST("/payments/auth", h.pay(domain.TransactionTypeAuth))
	r.POST("/payments/preauth", h.pay(domain.TransactionTypePreAuth))
	r.POST("/payments/postauth", h.postAuth)
	r.POST("/payments/refund", h.refund)
	r.POST("/payments/void", h.void)
	r.POST("/payments/inquiry", h.inquiry)
	r.POST("/3dsecure", h.initiate3DSecure)
	r.POST("/3dsecure/callback", h.complete3DSecure)
}

// pay handles sale, auth and preauth submissions, which share a body shape
func (h *Handler) pay(tranType domain.TransactionType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto paymentDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		amount, err := decimal.NewFromString(dto.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}

		var req *domain.TransactionRequest
		switch tranType {
		case domain.TransactionTypeAuth:
			req, err = domain.NewAuthRequest(amount, parseCurrency(dto.Currency), dto.Card.toDomain())
		case domain.TransactionTypePreAuth:
			req, err = domain.NewPreAuthRequest(amount, parseCurrency(dto.Currency), dto.Card.toDomain())
		default:
			req, err = domain.NewPaymentRequest(amount, parseCurrency(dto.Currency), dto.Card.toDomain())
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := dto.apply(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		h.respond(c, string(tranType), func(ctx context.Context) *domain.PaymentResponse {
			return h.gateway.Process(ctx, req)
		})
	}
}

func (h *Handler) postAuth(c *gin.Context) {
	var dto postAuthDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	req, err := domain.NewPostAuthRequest(dto.OrderID, amount, parseCurrency(dto.Currency))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, string(domain.TransactionTypePostAuth), func(ctx context.Context) *domain.PaymentResponse {
		return h.gateway.Process(ctx, req)
	})
}

func (h *Handler) refund(c *gin.Context) {
	var dto refundDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	h.respond(c, string(domain.TransactionTypeRefund), func(ctx context.Context) *domain.PaymentResponse {
		return h.gateway.Refund(ctx, dto.OrderID, amount, parseCurrency(dto.Currency))
	})
}

func (h *Handler) void(c *gin.Context) {
	var dto voidDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dto.OrderID == "" && dto.TransID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id or trans_id is required"})
		return
	}
	h.respond(c, string(domain.TransactionTypeVoid), func(ctx context.Context) *domain.PaymentResponse {
		if dto.OrderID != "" {
			return h.gateway.Void(ctx, dto.OrderID)
		}
		return h.gateway.VoidTransaction(ctx, dto.TransID)
	})
}

func (h *Handler) inquiry(c *gin.Context) {
	var dto inquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, string(domain.TransactionTypeInquiry), func(ctx context.Context) *domain.PaymentResponse {
		return h.gateway.Inquire(ctx, dto.OrderID)
	})
}

func (h *Handler) initiate3DSecure(c *gin.Context) {
	var dto threeDSecureDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	resp := h.gateway.Initiate3DSecure(&domain.ThreeDSecureRequest{
		OrderID:     dto.OrderID,
		Amount:      amount,
		Currency:    parseCurrency(dto.Currency),
		Card:        dto.Card.toDomain(),
		SuccessURL:  dto.SuccessURL,
		FailureURL:  dto.FailureURL,
		Installment: dto.Installment,
		Description: dto.Description,
	})

	status := http.StatusOK
	if resp.Status == domain.ThreeDStatusError {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

// complete3DSecure receives the issuer's form post after cardholder
// authentication and finishes the payment
func (h *Handler) complete3DSecure(c *gin.Context) {
	var cb domain.ThreeDSecureCallback
	if err := c.ShouldBind(&cb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, string(domain.TransactionTypeAuth), func(ctx context.Context) *domain.PaymentResponse {
		return h.gateway.Complete3DSecure(ctx, &cb)
	})
}

// respond runs the gateway call with metrics around it and writes the
// normalized response. The HTTP status tracks the transport, not the
// business outcome: declines are 200s, only local/system failures are 502s.
func (h *Handler) respond(c *gin.Context, tranType string, call func(ctx context.Context) *domain.PaymentResponse) {
	done := observability.TrackTransaction(tranType)
	resp := call(c.Request.Context())
	done(string(resp.Status))

	status := http.StatusOK
	if resp.Status == domain.StatusError {
		status = http.StatusBadGateway
	}
	c.JSON(status, resp)
}
