package project

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffold_ai_server/internal/template"
	"scaffold_ai_server/internal/types"
)

type stubProductSource struct {
	products []types.Product
	err      error
	calls    int
}

func (s *stubProductSource) FetchProducts(_ context.Context, _ string) ([]types.Product, error) {
	s.calls++
	return s.products, s.err
}

// stubImageSource returns an image only for product indexes listed in
// present; everything else reports absent.
type stubImageSource struct {
	present map[string]string // product name -> base64 payload
}

func (s *stubImageSource) FetchImage(_ context.Context, name, _ string) (string, error) {
	if b64, ok := s.present[name]; ok {
		return b64, nil
	}
	return "", errors.New("image synthesis failed")
}

func fourProducts() []types.Product {
	out := make([]types.Product, 4)
	for i := range out {
		out[i] = types.Product{
			Name:        fmt.Sprintf("Café %d", i),
			Price:       49.90,
			Description: "Grãos selecionados",
			Category:    "Cafés",
			Stock:       20,
		}
	}
	return out
}

func TestMerge_PartialImages(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	products := &stubProductSource{products: fourProducts()}
	images := &stubImageSource{present: map[string]string{
		"Café 0": b64,
		"Café 2": b64,
	}}
	m := NewMerger(products, &stubProductSource{}, images)

	result, err := m.Merge(context.Background(), "cafés especiais")
	require.NoError(t, err)
	assert.Equal(t, "Gerando produtos e imagens com IA ✨", result.LifecyclePrefix)

	// Real images at indexes 0 and 2, order-aligned with the record list.
	assert.Contains(t, result.Files, "public/images/product_0.png")
	assert.Contains(t, result.Files, "public/images/product_2.png")
	assert.NotContains(t, result.Files, "public/images/product_1.png")
	assert.NotContains(t, result.Files, "public/images/product_3.png")
	assert.True(t, result.Files["public/images/product_0.png"].Binary)

	catalog := result.Files["convex/products.ts"].Content
	assert.Contains(t, catalog, "/images/product_0.png")
	assert.Contains(t, catalog, "/images/product_2.png")
	assert.Contains(t, catalog, "https://placehold.co/300x300/1f2937/d1d5db?text=Imagem%20Indispon%C3%ADvel")
	assert.Equal(t, 4, strings.Count(catalog, "{ name: '"), "catalog must declare exactly 4 entries")
}

func TestMerge_EmptyCatalogFails(t *testing.T) {
	m := NewMerger(&stubProductSource{products: nil}, &stubProductSource{}, &stubImageSource{})

	result, err := m.Merge(context.Background(), "papelaria")
	require.Error(t, err)
	assert.Nil(t, result)

	var genErr *ContentGenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestMerge_ProductFetchFailureFails(t *testing.T) {
	m := NewMerger(&stubProductSource{err: errors.New("rate limited")}, &stubProductSource{}, &stubImageSource{})

	_, err := m.Merge(context.Background(), "papelaria")
	var genErr *ContentGenerationError
	require.True(t, errors.As(err, &genErr))
}

func TestMerge_VehicleThemeUsesVehicleSource(t *testing.T) {
	llm := &stubProductSource{products: fourProducts()}
	vehicles := &stubProductSource{products: []types.Product{
		{Name: "Fiat Uno", Price: 24688, Description: "Ano 2014", Category: "Veículos", Stock: 12},
	}}
	m := NewMerger(llm, vehicles, &stubImageSource{})

	result, err := m.Merge(context.Background(), types.CarsTheme)
	require.NoError(t, err)
	assert.Equal(t, 0, llm.calls)
	assert.Equal(t, 1, vehicles.calls)
	assert.Equal(t, "Buscando dados de veículos e gerando imagens 🚗", result.LifecyclePrefix)

	// For the vehicle path the placeholder label is the product name.
	catalog := result.Files["convex/products.ts"].Content
	assert.Contains(t, catalog, "text=Fiat%20Uno")
}

func TestMerge_DoesNotMutateTemplate(t *testing.T) {
	before, ok := template.CloneFiles(types.ProjectStore)
	require.True(t, ok)

	b64 := base64.StdEncoding.EncodeToString([]byte("img"))
	m := NewMerger(
		&stubProductSource{products: fourProducts()},
		&stubProductSource{},
		&stubImageSource{present: map[string]string{"Café 0": b64}},
	)
	_, err := m.Merge(context.Background(), "cafés")
	require.NoError(t, err)

	after, _ := template.CloneFiles(types.ProjectStore)
	assert.Equal(t, before, after, "merge must not touch the template registry")
}

func TestPlaceholderImageURL(t *testing.T) {
	assert.Equal(t,
		"https://placehold.co/300x300/1f2937/d1d5db?text=Imagem%20Indispon%C3%ADvel",
		PlaceholderImageURL("Imagem Indisponível"))
}
