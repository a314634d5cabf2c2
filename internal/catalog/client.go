package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/duckydrinks/storefront/pkg/client/rest"
	"github.com/duckydrinks/storefront/pkg/config"
)

const tokenHeader = "X-Shopify-Storefront-Access-Token"

const productFields = `
  id
  title
  description
  handle
  productType
  tags
  priceRange {
    minVariantPrice {
      amount
      currencyCode
    }
  }
  images(first: 5) {
    edges {
      node {
        url
        altText
      }
    }
  }
  variants(first: 10) {
    edges {
      node {
        id
        title
        price {
          amount
          currencyCode
        }
        availableForSale
        selectedOptions {
          name
          value
        }
      }
    }
  }
  options {
    name
    values
  }`

const productsQuery = `
  query GetProducts($first: Int!) {
    products(first: $first) {
      edges {
        node {` + productFields + `
        }
      }
    }
  }`

const productByHandleQuery = `
  query GetProduct($handle: String!) {
    productByHandle(handle: $handle) {` + productFields + `
    }
  }`

const collectionQuery = `
  query GetCollection($handle: String!, $numProducts: Int!) {
    collection(handle: $handle) {
      title
      products(first: $numProducts) {
        edges {
          node {` + productFields + `
          }
        }
      }
    }
  }`

// Client queries the storefront GraphQL API. All calls go through the
// provided Doer, which the application wires up with a circuit breaker.
type Client struct {
	url    string
	token  string
	doer   rest.Doer
	logger *slog.Logger
}

// NewClient creates a catalog client for the configured storefront.
func NewClient(cfg config.CatalogConfig, doer rest.Doer, logger *slog.Logger) *Client {
	return &Client{
		url:    cfg.URL(),
		token:  cfg.Token,
		doer:   doer,
		logger: logger.With("component", "catalog"),
	}
}

// FetchProducts retrieves up to first products from the catalog.
func (c *Client) FetchProducts(ctx context.Context, first int) ([]Product, error) {
	var data struct {
		Products productConnection `json:"products"`
	}
	if err := c.query(ctx, productsQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	return data.Products.products(), nil
}

// ProductByHandle retrieves a single product by its URL handle.
// Returns ErrProductNotFound if the handle is unknown.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var data struct {
		ProductByHandle *productNode `json:"productByHandle"`
	}
	if err := c.query(ctx, productByHandleQuery, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.ProductByHandle == nil {
		return nil, ErrProductNotFound
	}
	product := data.ProductByHandle.product()
	return &product, nil
}

// CollectionProducts retrieves up to first products from the named collection.
// An unknown collection yields an empty slice, not an error.
func (c *Client) CollectionProducts(ctx context.Context, handle string, first int) ([]Product, error) {
	var data struct {
		Collection *struct {
			Title    string            `json:"title"`
			Products productConnection `json:"products"`
		} `json:"collection"`
	}
	if err := c.query(ctx, collectionQuery, map[string]any{"handle": handle, "numProducts": first}, &data); err != nil {
		return nil, err
	}
	if data.Collection == nil {
		c.logger.WarnContext(ctx, "Collection not found in catalog", "handle", handle)
		return []Product{}, nil
	}
	return data.Collection.Products.products(), nil
}

// query posts a GraphQL request and decodes the data payload into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to encode catalog query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusPaymentRequired {
		return ErrPaymentRequired
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			messages[i] = e.Message
		}
		return fmt.Errorf("catalog query failed: %s", strings.Join(messages, ", "))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode catalog data: %w", err)
	}
	return nil
}

// Wire shapes below mirror the GraphQL connection nesting and are flattened
// into the package types before they leave the client.

type productConnection struct {
	Edges []struct {
		Node productNode `json:"node"`
	} `json:"edges"`
}

func (c productConnection) products() []Product {
	products := make([]Product, len(c.Edges))
	for i, edge := range c.Edges {
		products[i] = edge.Node.product()
	}
	return products
}

type productNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Handle      string   `json:"handle"`
	ProductType string   `json:"productType"`
	Tags        []string `json:"tags"`
	PriceRange  struct {
		MinVariantPrice Money `json:"minVariantPrice"`
	} `json:"priceRange"`
	Images struct {
		Edges []struct {
			Node struct {
				URL     string `json:"url"`
				AltText string `json:"altText"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node struct {
				ID               string           `json:"id"`
				Title            string           `json:"title"`
				Price            Money            `json:"price"`
				AvailableForSale bool             `json:"availableForSale"`
				SelectedOptions  []SelectedOption `json:"selectedOptions"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
	Options []ProductOption `json:"options"`
}

func (n productNode) product() Product {
	product := Product{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Handle:      n.Handle,
		ProductType: n.ProductType,
		Tags:        n.Tags,
		MinPrice:    n.PriceRange.MinVariantPrice,
		Options:     n.Options,
	}
	for _, edge := range n.Images.Edges {
		product.Images = append(product.Images, Image{URL: edge.Node.URL, AltText: edge.Node.AltText})
	}
	for _, edge := range n.Variants.Edges {
		product.Variants = append(product.Variants, Variant{
			ID:               edge.Node.ID,
			Title:            edge.Node.Title,
			Price:            edge.Node.Price,
			AvailableForSale: edge.Node.AvailableForSale,
			SelectedOptions:  edge.Node.SelectedOptions,
		})
	}
	return product
}
