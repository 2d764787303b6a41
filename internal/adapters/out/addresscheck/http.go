package addresscheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ordertaking/internal/core/domain/model/order"
)

const checkPath = "/addresses/check"

// addressDTO is the address service's wire format for both request and response.
type addressDTO struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

func fromUnvalidated(a order.UnvalidatedAddress) addressDTO {
	return addressDTO(a)
}

func (d addressDTO) toChecked() order.CheckedAddress {
	return order.CheckedAddress(d)
}

// HTTPChecker calls POST {baseURL}/addresses/check.
//
// Responses:
//   - 200: the address exists; a JSON body, if any, is the normalized address
//   - 404: order.AddressNotFound
//   - 422: order.InvalidFormat
//   - anything else, or no response: an infrastructure error
type HTTPChecker struct {
	baseURL string
	client  *http.Client
}

// NewHTTPChecker uses a client with a 5 second timeout when client is nil.
func NewHTTPChecker(baseURL string, client *http.Client) *HTTPChecker {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPChecker{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Endpoint is the URL the checker posts to.
func (c *HTTPChecker) Endpoint() string {
	return c.baseURL + checkPath
}

func (c *HTTPChecker) CheckAddressExists(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	body, err := json.Marshal(fromUnvalidated(address))
	if err != nil {
		return order.CheckedAddress{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return order.CheckedAddress{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return order.CheckedAddress{}, fmt.Errorf("address service %s: %w", c.Endpoint(), err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeChecked(resp.Body, address)
	case http.StatusNotFound:
		return order.CheckedAddress{}, &order.AddressValidationError{Kind: order.AddressNotFound}
	case http.StatusUnprocessableEntity:
		return order.CheckedAddress{}, &order.AddressValidationError{Kind: order.InvalidFormat}
	default:
		return order.CheckedAddress{}, fmt.Errorf("address service %s: unexpected status %d", c.Endpoint(), resp.StatusCode)
	}
}

func decodeChecked(body io.Reader, sent order.UnvalidatedAddress) (order.CheckedAddress, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return order.CheckedAddress{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return order.CheckedAddress(sent), nil
	}

	var dto addressDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return order.CheckedAddress{}, fmt.Errorf("decode address service response: %w", err)
	}
	return dto.toChecked(), nil
}
