package template

import (
	"fmt"
	"strings"

	"scaffold_ai_server/internal/types"
)

// The product catalog lives in convex/products.ts as the seed data of the
// generated store. The static template ships a default catalog; a themed
// generation rewrites the whole file with the generated records.

const productsFileHeader = `import { query, mutation } from "./_generated/server";
import { v } from "convex/values";

const requireAuth = async (ctx: any) => {
    const identity = await ctx.auth.getUserIdentity();
    if (!identity) {
        throw new Error("Autenticação necessária para realizar esta ação.");
    }
    return identity;
};

// Busca todos os produtos (público)
export const get = query({
  args: {},
  handler: async (ctx) => {
    return await ctx.db.query("products").order("desc").collect();
  },
});

// Adiciona um novo produto (protegido)
export const add = mutation({
    args: {
        name: v.string(),
        price: v.number(),
        stock: v.number(),
        description: v.string(),
        category: v.string(),
        imageUrl: v.string()
    },
    handler: async (ctx, args) => {
        await requireAuth(ctx);
        const productId = await ctx.db.insert("products", args);
        return productId;
    }
});

// Atualiza um produto (protegido)
export const update = mutation({
    args: {
        id: v.id("products"),
        name: v.optional(v.string()),
        price: v.optional(v.number()),
        stock: v.optional(v.number()),
        description: v.optional(v.string()),
        category: v.optional(v.string()),
        imageUrl: v.optional(v.string())
    },
    handler: async (ctx, { id, ...rest }) => {
        await requireAuth(ctx);
        await ctx.db.patch(id, rest);
    }
});

// Deleta um produto (protegido)
export const remove = mutation({
    args: { id: v.id("products") },
    handler: async (ctx, args) => {
        await requireAuth(ctx);
        await ctx.db.delete(args.id);
    }
});

// Popula o banco com dados iniciais se estiver vazio (público)
export const seed = mutation({
    args: {},
    handler: async (ctx) => {
        const existingProducts = await ctx.db.query("products").collect();
        if (existingProducts.length > 0) {
            console.log("Banco de dados já populado. Semeamento ignorado.");
            return;
        }
        console.log("Banco de dados vazio. Semeando dados iniciais...");
        const initialProducts = [
`

const productsFileFooter = `        ];
        for (const product of initialProducts) {
            await ctx.db.insert("products", product);
        }
        console.log("Semeamento concluído.");
    }
});
`

// ProductsFileContent renders convex/products.ts with the given catalog as
// its seed data. products and imageRefs are order-aligned; imageRefs[i] is
// either a path under public/ (e.g. "/images/product_0.png") or an absolute
// placeholder URL.
func ProductsFileContent(products []types.Product, imageRefs []string) string {
	var b strings.Builder
	b.WriteString(productsFileHeader)
	for i, p := range products {
		imageURL := ""
		if i < len(imageRefs) {
			imageURL = imageRefs[i]
		}
		fmt.Fprintf(&b,
			"            { name: '%s', price: %.2f, description: '%s', category: '%s', stock: %d, imageUrl: '%s' },\n",
			jsEscape(p.Name), p.Price, jsEscape(p.Description), jsEscape(p.Category), p.Stock, jsEscape(imageURL))
	}
	b.WriteString(productsFileFooter)
	return b.String()
}

// jsEscape makes a string safe inside a single-quoted JS literal.
func jsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// defaultProductsFileContent is the catalog the static store template ships
// with, before any themed generation.
var defaultProductsFileContent = ProductsFileContent(
	[]types.Product{
		{Name: "Laptop Ultra Fino", Price: 4999.90, Description: "Leve e potente, ideal para trabalho e entretenimento.", Category: "Eletrônicos", Stock: 15},
		{Name: "Smartphone 5G", Price: 2499.00, Description: "Conectividade de ponta e câmera de alta resolução.", Category: "Eletrônicos", Stock: 30},
		{Name: "Fone de Ouvido Bluetooth", Price: 399.50, Description: "Som imersivo e cancelamento de ruído para total foco.", Category: "Acessórios", Stock: 50},
		{Name: "Smartwatch Esportivo", Price: 899.99, Description: "Monitore suas atividades físicas com estilo e precisão.", Category: "Acessórios", Stock: 25},
	},
	[]string{
		"https://placehold.co/300x300/1f2937/d1d5db?text=Laptop",
		"https://placehold.co/300x300/1f2937/d1d5db?text=Smartphone",
		"https://placehold.co/300x300/1f2937/d1d5db?text=Fone",
		"https://placehold.co/300x300/1f2937/d1d5db?text=Watch",
	},
)
