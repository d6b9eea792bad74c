package contracts

import (
	"context"

	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// CatalogLookup resolves service identifiers to catalog base prices.
// Unknown identifiers are simply absent from the result; a missing
// catalog entry is never a fatal error for a quote.
type CatalogLookup interface {
	BasePrices(ctx context.Context, serviceIDs []string) (map[string]*money.Money, error)
}
