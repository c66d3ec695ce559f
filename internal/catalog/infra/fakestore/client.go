// Package fakestore implements the catalog product source against the
// FakeStore REST API (https://fakestoreapi.com).
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://fakestoreapi.com"

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the product API. A nil httpClient falls
// back to http.DefaultClient; no request timeout is set, a hung fetch only
// ever blocks the catalog view.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

type productDTO struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Rating   struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (c *Client) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	url := c.baseURL + "/products?limit=" + strconv.Itoa(limit)

	var dtos []productDTO
	if err := c.getJSON(ctx, url, &dtos); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, domain.Product{
			ID:       d.ID,
			Title:    d.Title,
			Price:    decimal.NewFromFloat(d.Price),
			Image:    d.Image,
			Category: d.Category,
			Rating: domain.Rating{
				Rate:  d.Rating.Rate,
				Count: d.Rating.Count,
			},
		})
	}

	return products, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, c.baseURL+"/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	return nil
}
