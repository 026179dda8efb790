package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/lanavaja/barber-platform/internal/models"
)

// LinkProvider turns an unpaid invoice into a hosted checkout link.
type LinkProvider struct {
	client preference.Client
}

func NewLinkProvider(accessToken string) (*LinkProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &LinkProvider{client: preference.NewClient(cfg)}, nil
}

// PaymentLink creates a checkout preference for the invoice and returns
// its init point URL.
func (p *LinkProvider) PaymentLink(ctx context.Context, inv *models.Invoice) (string, error) {
	items := make([]preference.ItemRequest, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, preference.ItemRequest{
			Title:     it.Description,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	resource, err := p.client.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: inv.Number,
	})
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resource.InitPoint, nil
}
