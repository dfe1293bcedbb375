package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffold_ai_server/internal/types"
)

func TestRegistryIntegrity(t *testing.T) {
	for _, pt := range []types.ProjectType{types.ProjectStore, types.ProjectBlog} {
		p, ok := Get(pt)
		require.True(t, ok, "archetype %s must be registered", pt)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Lifecycle)
		assert.NotEmpty(t, p.Files)

		for path, entry := range p.Files {
			assert.False(t, strings.HasPrefix(path, "/"), "%s: paths are relative", path)
			if entry.Binary {
				assert.NotEmpty(t, entry.Base64, "%s: binary entries carry base64 data", path)
			}
		}
	}
}

func TestStoreTemplateShipsCatalogAndPlaceholder(t *testing.T) {
	p, ok := Get(types.ProjectStore)
	require.True(t, ok)

	catalog, ok := p.Files["convex/products.ts"]
	require.True(t, ok)
	assert.Contains(t, catalog.Content, "Laptop Ultra Fino")
	assert.Contains(t, catalog.Content, "placehold.co")

	_, ok = p.Files["public/.placeholder"]
	assert.True(t, ok, "store template keeps public/ alive with a placeholder entry")
}

func TestCloneFilesIsACopy(t *testing.T) {
	a, ok := CloneFiles(types.ProjectBlog)
	require.True(t, ok)

	a["README.md"] = types.TextEntry("mutated")
	a["novo.txt"] = types.TextEntry("extra")

	b, _ := CloneFiles(types.ProjectBlog)
	assert.NotEqual(t, "mutated", b["README.md"].Content)
	_, leaked := b["novo.txt"]
	assert.False(t, leaked)
}

func TestProductsFileContent(t *testing.T) {
	products := []types.Product{
		{Name: "Caneca d'Água", Price: 39.9, Description: "Linha 'retrô'", Category: "Cozinha", Stock: 12},
	}
	got := ProductsFileContent(products, []string{"/images/product_0.png"})

	// Single quotes in record fields must not break the JS literal.
	assert.Contains(t, got, `name: 'Caneca d\'Água'`)
	assert.Contains(t, got, `description: 'Linha \'retrô\''`)
	assert.Contains(t, got, "price: 39.90")
	assert.Contains(t, got, "stock: 12")
	assert.Contains(t, got, `imageUrl: '/images/product_0.png'`)

	// The surrounding Convex module survives the rewrite intact.
	assert.True(t, strings.HasPrefix(got, `import { query, mutation } from "./_generated/server";`))
	assert.Contains(t, got, "export const seed = mutation")
	assert.Equal(t, 1, strings.Count(got, "{ name: '"))
}

func TestProductsFileContent_MissingRefFallsBackToEmpty(t *testing.T) {
	got := ProductsFileContent([]types.Product{{Name: "Item", Stock: 1}}, nil)
	assert.Contains(t, got, `imageUrl: ''`)
}
