package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates checkout links (preferences) for approved
// quotes. The gateway is an optional collaborator: when the access token is
// absent the caller keeps a nil gateway and skips link creation entirely.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

// CreatePaymentLink creates a single-item checkout preference and returns
// its init point URL.
func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, referenceID, titulo string, valor float64) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://mock.mercadopago.local/checkout/%s", referenceID)
		log.Printf("[payment][gateway] mock link created reference_id=%s valor=%.2f", referenceID, valor)
		return url, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] creating link reference_id=%s valor=%.2f", referenceID, valor)

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: referenceID,
		Items: []preference.ItemRequest{
			{
				Title:     titulo,
				Quantity:  1,
				UnitPrice: valor,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference_id=%s err=%v", referenceID, err)
		return "", err
	}

	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] link created reference_id=%s preference_id=%s", referenceID, resp.ID)
	return url, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
