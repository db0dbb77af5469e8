package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sangeeth-21/velkani-admin/internal/domain/order"
)

const userEndpoint = "user.php"

func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	err := c.get(ctx, userEndpoint, url.Values{"action": {"get_orders"}}, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, userEndpoint, action("delete_order", map[string]any{
		"order_id": id,
	}), nil)
}
