package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sangeeth-21/velkani-admin/internal/domain/order"
)

func (c *Client) ListUsers(ctx context.Context) ([]order.User, error) {
	var out []order.User
	err := c.get(ctx, userEndpoint, url.Values{"action": {"get_users"}}, &out)
	return out, err
}

func (c *Client) AddUser(ctx context.Context, name, number string) error {
	return c.sendJSON(ctx, http.MethodPost, userEndpoint, action("add_user", map[string]any{
		"name":   name,
		"number": number,
	}), nil)
}

func (c *Client) UpdateUser(ctx context.Context, uid, name, number string) error {
	return c.sendJSON(ctx, http.MethodPost, userEndpoint, action("update_user", map[string]any{
		"uid":    uid,
		"name":   name,
		"number": number,
	}), nil)
}

func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	return c.sendJSON(ctx, http.MethodPost, userEndpoint, action("delete_user", map[string]any{
		"uid": uid,
	}), nil)
}
