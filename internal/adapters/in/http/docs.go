// Package http is the inbound REST adapter. It exposes the PlaceOrder workflow
// as POST /api/v1/orders, validates requests against the embedded OpenAPI
// document and serves that document through the swagger UI.
package http
