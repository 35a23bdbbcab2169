package response

import "bahia_gestao/internal/domain/pricing"

type CartResponse struct {
	*pricing.Cart
	Totals pricing.Totals `json:"totals"`
}

func FromCart(c *pricing.Cart, adj pricing.Adjustments) CartResponse {
	return CartResponse{Cart: c, Totals: c.Totals(adj)}
}
