package nestpay

import (
	"context"
	"strconv"
	"time"

	"github.com/nestpaykit/payment-service/internal/adapters/ports"
	"github.com/nestpaykit/payment-service/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// threeDSuccessToken is the authentication status value the issuer sends
// back on a successful cardholder authentication
const threeDSuccessToken = "success"

// Config holds the immutable merchant credentials and deployment selection.
// StoreKey is only needed for 3-D Secure flows.
type Config struct {
	ClientID    string
	Username    string
	Password    string
	StoreKey    string
	Bank        Bank
	Environment Environment
}

// Client talks the CC5 protocol to one bank deployment. All operations are
// pure functions of their inputs plus this immutable configuration: there is
// no shared mutable state, concurrent calls need no coordination, and no
// operation ever retries. Every operation returns a normalized response;
// transport and protocol failures are classified, never surfaced as errors.
type Client struct {
	cfg       Config
	endpoints Endpoints
	builder   requestBuilder
	transport ports.Transport
	logger    *zap.Logger
	now       func() time.Time
}

// NewClient creates a gateway client. A nil registry uses the default bank
// table; a nil logger logs nothing.
func NewClient(cfg Config, registry *EndpointRegistry, transport ports.Transport, logger *zap.Logger) *Client {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:       cfg,
		endpoints: registry.Resolve(cfg.Bank, cfg.Environment),
		builder: requestBuilder{
			username: cfg.Username,
			password: cfg.Password,
			clientID: cfg.ClientID,
		},
		transport: transport,
		logger:    logger,
		now:       time.Now,
	}
}

// Process performs one payment round trip: serialize, post, classify. The
// request is not mutated; a missing order id is generated onto a copy unless
// the request is keyed by transaction id instead.
func (c *Client) Process(ctx context.Context, req *domain.TransactionRequest) *domain.PaymentResponse {
	r := *req
	if r.OrderID == "" && r.TransID == "" {
		r.OrderID = domain.NewOrderID()
	}

	c.logger.Info("processing gateway transaction",
		zap.String("type", string(r.Type)),
		zap.String("order_id", r.OrderID),
	)

	body := c.builder.Build(&r)
	raw, err := c.transport.Post(ctx, c.endpoints.API, body)
	if err != nil {
		c.logger.Error("gateway round trip failed",
			zap.String("order_id", r.OrderID),
			zap.Error(err),
		)
		return errorResponse(r.OrderID, domain.ErrorCodeSystemError, err.Error())
	}

	resp := parseResponse(raw, r.OrderID)
	c.logger.Info("gateway transaction classified",
		zap.String("order_id", resp.OrderID),
		zap.String("status", string(resp.Status)),
		zap.String("proc_return_code", resp.ProcReturnCode),
	)
	return resp
}

// Initiate3DSecure computes the signed redirect payload for cardholder
// authentication. No network call happens here: the result is handed to the
// caller's web layer as an auto-submitting form towards the issuer's page.
func (c *Client) Initiate3DSecure(req *domain.ThreeDSecureRequest) *domain.ThreeDSecureResponse {
	if c.cfg.StoreKey == "" {
		return &domain.ThreeDSecureResponse{
			Status:       domain.ThreeDStatusError,
			ErrorCode:    string(domain.ErrorCodeInvalid3DSignature),
			ErrorMessage: "store key is required for 3-D Secure transactions",
		}
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = domain.NewOrderID()
	}
	amount := domain.FormatAmount(req.Amount)

	form := &domain.ThreeDSecureForm{
		ClientID:  c.cfg.ClientID,
		OID:       orderID,
		Amount:    amount,
		OkURL:     req.SuccessURL,
		FailURL:   req.FailureURL,
		Rnd:       strconv.FormatInt(c.now().UnixMilli(), 10),
		Hash:      secureHash(c.cfg.ClientID, orderID, amount, req.SuccessURL, req.FailureURL, c.cfg.StoreKey),
		StoreType: "3d",
		Lang:      "tr",
	}

	c.logger.Info("3-D Secure redirect prepared",
		zap.String("order_id", orderID),
		zap.String("gate", c.endpoints.Gate3D),
	)

	return &domain.ThreeDSecureResponse{
		Status:      domain.ThreeDStatusPending,
		RedirectURL: c.endpoints.Gate3D,
		Form:        form,
	}
}

// Complete3DSecure handles the issuer's callback. A failed cardholder
// authentication is declined locally and never escalated to an authorization
// attempt; only a successful one proceeds to the payment round trip carrying
// the proof values.
func (c *Client) Complete3DSecure(ctx context.Context, cb *domain.ThreeDSecureCallback) *domain.PaymentResponse {
	if cb.OrderID == "" || cb.Amount == "" {
		return errorResponse(cb.OrderID, domain.ErrorCodeSystemError, "invalid 3-D Secure callback: order id and amount are required")
	}

	if cb.Status != threeDSuccessToken {
		c.logger.Warn("3-D Secure authentication failed",
			zap.String("order_id", cb.OrderID),
			zap.String("md_status", cb.Status),
		)
		return &domain.PaymentResponse{
			Status:          domain.StatusDeclined,
			OrderID:         cb.OrderID,
			ResponseCode:    string(domain.ErrorCodeInvalid3DStatus),
			ResponseMessage: "3D authentication failed",
		}
	}

	amount, err := decimal.NewFromString(cb.Amount)
	if err != nil {
		return errorResponse(cb.OrderID, domain.ErrorCodeSystemError, "invalid 3-D Secure callback: malformed amount")
	}

	req, err := domain.NewSecureAuthRequest(cb.OrderID, amount, domain.CurrencyTRY, domain.ThreeDSecureProof{
		MD:   cb.MD,
		XID:  cb.XID,
		ECI:  cb.ECI,
		CAVV: cb.CAVV,
	})
	if err != nil {
		return errorResponse(cb.OrderID, domain.ErrorCodeSystemError, err.Error())
	}

	return c.Process(ctx, req)
}

// Refund returns funds for a settled order
func (c *Client) Refund(ctx context.Context, orderID string, amount decimal.Decimal, currency domain.Currency) *domain.PaymentResponse {
	req, err := domain.NewRefundRequest(orderID, amount, currency)
	if err != nil {
		return errorResponse(orderID, domain.ErrorCodeSystemError, err.Error())
	}
	return c.Process(ctx, req)
}

// Void cancels an unsettled transaction by order id
func (c *Client) Void(ctx context.Context, orderID string) *domain.PaymentResponse {
	req, err := domain.NewVoidRequest(orderID)
	if err != nil {
		return errorResponse(orderID, domain.ErrorCodeSystemError, err.Error())
	}
	return c.Process(ctx, req)
}

// VoidTransaction cancels an unsettled transaction by gateway transaction id
func (c *Client) VoidTransaction(ctx context.Context, transID string) *domain.PaymentResponse {
	req, err := domain.NewVoidByTransIDRequest(transID)
	if err != nil {
		return errorResponse("", domain.ErrorCodeSystemError, err.Error())
	}
	return c.Process(ctx, req)
}

// Inquire queries the state of an existing order
func (c *Client) Inquire(ctx context.Context, orderID string) *domain.PaymentResponse {
	req, err := domain.NewInquiryRequest(orderID)
	if err != nil {
		return errorResponse(orderID, domain.ErrorCodeSystemError, err.Error())
	}
	return c.Process(ctx, req)
}
