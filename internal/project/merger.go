// Package project implements the generation pipeline: merging generated
// content into a template file map, projecting the map into a display tree,
// and serializing it into a downloadable archive.
package project

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"scaffold_ai_server/internal/template"
	"scaffold_ai_server/internal/types"
)

// ProductSource produces the catalog records for a themed store.
type ProductSource interface {
	FetchProducts(ctx context.Context, theme string) ([]types.Product, error)
}

// ImageSource produces one product photo as base64-encoded bytes. An error
// means "image absent" for that one product, never a batch failure.
type ImageSource interface {
	FetchImage(ctx context.Context, productName, productDescription string) (string, error)
}

// Lifecycle prefix labels shown above the template's own assembly phases.
const (
	aiLifecyclePrefix       = "Gerando produtos e imagens com IA ✨"
	vehiclesLifecyclePrefix = "Buscando dados de veículos e gerando imagens 🚗"
)

const unavailableImageLabel = "Imagem Indisponível"

// Merger folds dynamically generated products and images into the store
// template's file map. It never mutates the template itself.
type Merger struct {
	products ProductSource
	vehicles ProductSource
	images   ImageSource
}

// NewMerger wires the two product sources and the image source. vehicles is
// used when the theme is the reserved sentinel; products otherwise.
func NewMerger(products, vehicles ProductSource, images ImageSource) *Merger {
	return &Merger{
		products: products,
		vehicles: vehicles,
		images:   images,
	}
}

// MergeResult is the outcome of a successful merge.
type MergeResult struct {
	Files           types.FileMap
	LifecyclePrefix string
}

// Merge produces the store archetype's file map with a freshly generated
// catalog: one binary image entry per product that got a real image, a
// placeholder URL for each one that did not, and a rewritten
// convex/products.ts declaring the full catalog.
//
// The product fetch always completes before any image fetch is issued; the
// image batch then runs fully in parallel and the merge waits for every
// result. A failed product fetch (or an empty catalog) fails the merge with
// ContentGenerationError; failed images never do.
func (m *Merger) Merge(ctx context.Context, theme string) (*MergeResult, error) {
	source := m.products
	prefix := aiLifecyclePrefix
	isVehicles := theme == types.CarsTheme
	if isVehicles {
		source = m.vehicles
		prefix = vehiclesLifecyclePrefix
	}

	// 1. Fetch the catalog records. Images depend on name/description, so
	// nothing else can start before this finishes.
	products, err := source.FetchProducts(ctx, theme)
	if err != nil {
		return nil, &ContentGenerationError{Err: err}
	}
	if len(products) == 0 {
		return nil, &ContentGenerationError{Err: fmt.Errorf("product source returned no records")}
	}

	// 2. Fetch all product images concurrently and wait for the whole batch.
	// Each slot ends up as base64 data or empty ("absent").
	images := make([]string, len(products))
	var wg sync.WaitGroup
	for i, p := range products {
		wg.Add(1)
		go func(i int, p types.Product) {
			defer wg.Done()
			b64, err := m.images.FetchImage(ctx, p.Name, p.Description)
			if err != nil {
				log.Printf("WARN: image generation failed for %q, using placeholder: %v", p.Name, err)
				return
			}
			images[i] = b64
		}(i, p)
	}
	wg.Wait()

	// 3. Fold everything into a copy of the store template.
	files, ok := template.CloneFiles(types.ProjectStore)
	if !ok {
		return nil, &ContentGenerationError{Err: fmt.Errorf("store template not registered")}
	}

	imageRefs := make([]string, len(products))
	for i, b64 := range images {
		if b64 != "" {
			imagePath := fmt.Sprintf("public/images/product_%d.png", i)
			files[imagePath] = types.BinaryEntry(b64)
			imageRefs[i] = "/" + strings.TrimPrefix(imagePath, "public/")
			continue
		}
		label := unavailableImageLabel
		if isVehicles {
			label = products[i].Name
		}
		imageRefs[i] = PlaceholderImageURL(label)
	}

	files["convex/products.ts"] = types.TextEntry(template.ProductsFileContent(products, imageRefs))

	return &MergeResult{Files: files, LifecyclePrefix: prefix}, nil
}

// PlaceholderImageURL builds the placehold.co reference used whenever a real
// product image is unavailable.
func PlaceholderImageURL(label string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(label), "+", "%20")
	return "https://placehold.co/300x300/1f2937/d1d5db?text=" + escaped
}
