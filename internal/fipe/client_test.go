package fipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeAcceptsStringsAndNumbers(t *testing.T) {
	// Brand and year codes arrive as strings ("21", "2014-1" — the latter is
	// not a number literal at all); model codes arrive as bare numbers.
	var entries []codedName
	err := json.Unmarshal([]byte(`[{"nome":"a","codigo":"2014-1"},{"nome":"b","codigo":7541}]`), &entries)
	require.NoError(t, err)
	assert.Equal(t, code("2014-1"), entries[0].Codigo)
	assert.Equal(t, code("7541"), entries[1].Codigo)

	var c code
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &c))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		valor string
		want  float64
	}{
		{"R$ 54.321,00", 54321.00},
		{"R$ 24.688,00", 24688.00},
		{"R$ 1.234.567,89", 1234567.89},
		{"R$ 399,50", 399.50},
		{"grátis", DefaultPrice},
		{"", DefaultPrice},
		{"R$ --", DefaultPrice},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.valor)
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.valor, got, tt.want)
		}
	}
}

func newFipeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/marcas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"nome": "Fiat", "codigo": "21"}]`))
	})
	mux.HandleFunc("/marcas/21/modelos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modelos": [{"nome": "Uno Mille 1.0", "codigo": 7541}]}`))
	})
	mux.HandleFunc("/marcas/21/modelos/7541/anos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"nome": "2014 Gasolina", "codigo": "2014-1"}]`))
	})
	mux.HandleFunc("/marcas/21/modelos/7541/anos/2014-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Valor": "R$ 24.688,00", "Marca": "Fiat", "Modelo": "Uno Mille 1.0", "AnoModelo": 2014, "Combustivel": "Gasolina"}`))
	})
	return httptest.NewServer(mux)
}

func TestFetchProducts(t *testing.T) {
	srv := newFipeServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, 2)
	products, err := c.FetchProducts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	for _, p := range products {
		assert.Equal(t, "Fiat Uno Mille 1.0", p.Name)
		assert.Equal(t, 24688.00, p.Price)
		assert.Equal(t, "Veículos", p.Category)
		assert.Contains(t, p.Description, "2014")
		assert.Contains(t, p.Description, "Gasolina")
		assert.GreaterOrEqual(t, p.Stock, 10)
		assert.LessOrEqual(t, p.Stock, 50)
	}
}

func TestFetchProducts_Concurrent(t *testing.T) {
	srv := newFipeServer(t)
	defer srv.Close()

	// One client is shared by every session in production; simultaneous
	// generations must not race on its random source.
	c := NewClient(srv.URL, 2)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products, err := c.FetchProducts(context.Background(), "")
			assert.NoError(t, err)
			assert.Len(t, products, 2)
		}()
	}
	wg.Wait()
}

func TestFetchProducts_BrandLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2)
	_, err := c.FetchProducts(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchProducts_NoBrands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2)
	_, err := c.FetchProducts(context.Background(), "")
	assert.Error(t, err)
}
