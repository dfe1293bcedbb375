// Package fipe looks up real vehicle pricing data from the public FIPE table
// API and exposes it as an alternate product-record source for the store
// generator.
package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"scaffold_ai_server/internal/types"
)

// DefaultPrice is used when a FIPE price string cannot be parsed. A record
// with an odd price is still a usable catalog entry; failing the whole
// lookup over formatting would not be.
const DefaultPrice = 50000.0

// Client queries the FIPE carros API (brands -> models -> years -> detail).
// Safe for concurrent use; one Client is shared by all sessions.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	mu           sync.Mutex // guards rng
	rng          *rand.Rand
	productCount int
}

// NewClient builds a Client against the given API base URL
// (e.g. "https://parallelum.com.br/fipe/api/v1/carros").
func NewClient(baseURL string, productCount int) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		productCount: productCount,
	}
}

// code is a brand/model/year identifier in a listing. Brands and years come
// back as JSON strings (year codes like "2014-1" are not numbers at all);
// model codes come back as bare numbers. Both decode into the string form
// used to build the next lookup path.
type code string

func (c *code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("code is neither string nor number: %w", err)
	}
	*c = code(n.String())
	return nil
}

// codedName is one entry of a brand/model/year listing.
type codedName struct {
	Nome   string `json:"nome"`
	Codigo code   `json:"codigo"`
}

type modelListing struct {
	Modelos []codedName `json:"modelos"`
}

// vehicleDetail is the priced record at the end of the lookup chain.
type vehicleDetail struct {
	Valor       string `json:"Valor"` // e.g. "R$ 54.321,00"
	Marca       string `json:"Marca"`
	Modelo      string `json:"Modelo"`
	AnoModelo   int    `json:"AnoModelo"`
	Combustivel string `json:"Combustivel"`
}

// FetchProducts implements the product-record source using vehicle pricing
// data: it picks a random brand, model and year per record and converts the
// priced detail into the catalog shape. The theme argument is ignored; this
// source is selected by the reserved theme sentinel.
func (c *Client) FetchProducts(ctx context.Context, _ string) ([]types.Product, error) {
	var brands []codedName
	if err := c.getJSON(ctx, "/marcas", &brands); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle brands: %w", err)
	}
	if len(brands) == 0 {
		return nil, fmt.Errorf("vehicle pricing API returned no brands")
	}

	products := make([]types.Product, 0, c.productCount)
	for i := 0; i < c.productCount; i++ {
		p, err := c.fetchRandomVehicle(ctx, brands)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch vehicle %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// intn is rand.Intn behind the client's mutex; *rand.Rand itself is not safe
// for concurrent use.
func (c *Client) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

func (c *Client) fetchRandomVehicle(ctx context.Context, brands []codedName) (types.Product, error) {
	brand := brands[c.intn(len(brands))]

	var listing modelListing
	path := fmt.Sprintf("/marcas/%s/modelos", brand.Codigo)
	if err := c.getJSON(ctx, path, &listing); err != nil {
		return types.Product{}, err
	}
	if len(listing.Modelos) == 0 {
		return types.Product{}, fmt.Errorf("brand %s has no models", brand.Nome)
	}
	model := listing.Modelos[c.intn(len(listing.Modelos))]

	var years []codedName
	path = fmt.Sprintf("/marcas/%s/modelos/%s/anos", brand.Codigo, model.Codigo)
	if err := c.getJSON(ctx, path, &years); err != nil {
		return types.Product{}, err
	}
	if len(years) == 0 {
		return types.Product{}, fmt.Errorf("model %s has no year listings", model.Nome)
	}
	year := years[c.intn(len(years))]

	var detail vehicleDetail
	path = fmt.Sprintf("/marcas/%s/modelos/%s/anos/%s", brand.Codigo, model.Codigo, year.Codigo)
	if err := c.getJSON(ctx, path, &detail); err != nil {
		return types.Product{}, err
	}

	return types.Product{
		Name:        fmt.Sprintf("%s %s", detail.Marca, detail.Modelo),
		Price:       ParsePrice(detail.Valor),
		Description: fmt.Sprintf("Ano %d, combustível %s. Preço pela tabela FIPE.", detail.AnoModelo, detail.Combustivel),
		Category:    "Veículos",
		Stock:       c.intn(41) + 10, // 10..50, the same range the LLM catalog uses
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ParsePrice converts a FIPE price string like "R$ 54.321,00" into its
// numeric value: everything except digits and the decimal comma is stripped
// and the comma becomes a point. Unparseable strings fall back to
// DefaultPrice rather than failing the record.
func ParsePrice(valor string) float64 {
	var b strings.Builder
	for _, r := range valor {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(b.String(), ",", ".")

	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		log.Printf("WARN: could not parse FIPE price %q, using default: %v", valor, err)
		return DefaultPrice
	}
	return price
}
