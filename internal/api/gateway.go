package api

import (
	"context"
	"fmt"

	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
)

// Gateway translates storefront operations into HTTP calls. Failures are
// reported twice on purpose: an APIError event carries the stage and
// error for telemetry subscribers, and the error is still returned so the
// direct caller can drive the UI.
type Gateway struct {
	client *Client
	events *events.Bus
}

// NewGateway wires a Gateway over the generic client.
func NewGateway(client *Client, bus *events.Bus) *Gateway {
	return &Gateway{client: client, events: bus}
}

// GetProductList fetches the full catalog in server order.
func (g *Gateway) GetProductList(ctx context.Context) ([]model.Product, error) {
	var resp ProductListResponse
	if err := g.client.Get(ctx, "product", &resp); err != nil {
		err = fmt.Errorf("fetch product list: %w", err)
		g.events.Publish(events.APIError, events.Failure{Stage: events.StageProductList, Err: err})
		return nil, err
	}
	return resp.Items, nil
}

// SubmitOrder posts the order and returns the server confirmation.
func (g *Gateway) SubmitOrder(ctx context.Context, order OrderRequest) (OrderResult, error) {
	var result OrderResult
	if err := g.client.Post(ctx, "order", order, &result); err != nil {
		err = fmt.Errorf("submit order: %w", err)
		g.events.Publish(events.APIError, events.Failure{Stage: events.StageOrderSubmit, Err: err})
		return OrderResult{}, err
	}
	return result, nil
}
