package interfaces

import "context"

// IPaymentLinkGateway abstracts external payment providers (e.g. Mercado
// Pago). When a quote is approved the service creates a checkout link for the
// final value, fire-and-forget; the gateway is an optional collaborator and
// may be absent entirely.
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, referenceID, titulo string, valor float64) (url string, err error)
}
