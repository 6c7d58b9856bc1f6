// Package api provides the HTTP client for the Web Larёk shop API.
//
// # Overview
//
// The package is split the same way on both sides of the wire:
//
//   - client.go: generic JSON client (base URL normalization, the do()
//     helper, StatusError for non-2xx responses)
//   - types.go: request and response shapes for the two endpoints
//   - gateway.go: the shop operations, GetProductList and SubmitOrder
//
// # Endpoints
//
//   - GET  /product: the full catalog as {total, items}
//   - POST /order: the order request; the response carries the
//     server-confirmed id and total
//
// # Error Handling
//
// Non-2xx responses are decoded for an {"error": "..."} body; when the
// body has no such field, the HTTP status text is used. Either way the
// caller receives a StatusError with the code and a user-presentable
// message.
//
// Gateway failures are reported twice: an api:error event carrying the
// failed stage goes out on the bus for any telemetry subscriber, and
// the wrapped error returns to the caller, who decides what the user
// sees. Every call takes a context.
package api
