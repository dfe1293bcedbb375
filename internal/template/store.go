package template

import "scaffold_ai_server/internal/types"

// --- TEMPLATES FOR THE 'STORE' PROJECT ---

const storePackageJsonContent = `{
  "name": "loja-simples-convex",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "react": "^18",
    "react-dom": "^18",
    "next": "14.2.3",
    "convex": "^1.12.0",
    "@clerk/nextjs": "^5.1.2"
  },
  "devDependencies": {
    "typescript": "^5",
    "@types/node": "^20",
    "@types/react": "^18",
    "@types/react-dom": "^18"
  }
}`

const storeReadmeContent = "# Loja Simples com Next.js, Convex e Clerk\n" +
	"\n" +
	"Este é um projeto Next.js com um backend reativo usando Convex e autenticação gerenciada pelo Clerk.\n" +
	"\n" +
	"## Pré-requisitos\n" +
	"\n" +
	"- Node.js\n" +
	"- Uma conta Convex (gratuita em [convex.dev](https://convex.dev))\n" +
	"- Uma conta Clerk (gratuita em [clerk.com](https://clerk.com))\n" +
	"\n" +
	"## Como Executar\n" +
	"\n" +
	"1.  **Instale as Dependências:**\n" +
	"    *   Descompacte o arquivo .zip e navegue até a pasta do projeto no terminal.\n" +
	"    *   Execute `npm install`.\n" +
	"\n" +
	"2.  **Configure o Clerk:**\n" +
	"    *   Faça login na sua conta Clerk e crie uma nova aplicação.\n" +
	"    *   Na dashboard do Clerk, vá para \"API Keys\". Copie a **Publishable key** e a **Secret key**.\n" +
	"    *   Ainda no Clerk, vá para \"JWT Templates\", crie um novo template e selecione a opção \"Convex\".\n" +
	"    *   Copie o valor do campo **Issuer URL**.\n" +
	"\n" +
	"3.  **Configure o Convex:**\n" +
	"    *   No terminal, execute `npx convex deploy`.\n" +
	"\n" +
	"4.  **Configure as Variáveis de Ambiente:**\n" +
	"    *   Crie um arquivo `.env.local` na raiz do projeto copiando o `.env.local.example` e preencha as chaves do Clerk.\n" +
	"\n" +
	"5.  **Execute a Aplicação:**\n" +
	"    *   Em um terminal, execute `npx convex dev`.\n" +
	"    *   Em **outro terminal**, execute `npm run dev` e abra [http://localhost:3000](http://localhost:3000).\n" +
	"    *   O banco de dados será populado com dados de exemplo na primeira visita.\n"

const storeEnvExampleContent = `# Clerk
NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY="pk_test_sua_chave_publica"
CLERK_SECRET_KEY="sk_test_sua_chave_secreta"
# Cole a Issuer URL do seu template JWT do Clerk aqui
CLERK_JWT_ISSUER_DOMAIN="https_sua_issuer_url.clerk.accounts.dev"

# A URL do Convex será preenchida automaticamente ao rodar 'npx convex dev'
# NEXT_PUBLIC_CONVEX_URL=...
`

const convexJsonContent = `{
  "functions": "convex/"
}`

const convexAuthConfigContent = `
export default {
  providers: [
    {
      domain: process.env.CLERK_JWT_ISSUER_DOMAIN,
      applicationID: "convex",
    },
  ],
};
`

const convexSchemaContent = `import { defineSchema, defineTable } from "convex/server";
import { v } from "convex/values";

export default defineSchema({
  products: defineTable({
    name: v.string(),
    price: v.number(),
    description: v.string(),
    category: v.string(),
    stock: v.number(),
    imageUrl: v.string(),
  }),
  sales: defineTable({
    userId: v.id("users"),
    total: v.number(),
    items: v.array(v.object({
        productId: v.id("products"),
        name: v.string(),
        price: v.number(),
        quantity: v.number(),
    })),
    shippingAddress: v.object({
        fullName: v.string(),
        address: v.string(),
        city: v.string(),
        postalCode: v.string(),
    }),
  }),
  users: defineTable({
    name: v.string(),
    clerkId: v.string(),
  }).index("by_clerk_id", ["clerkId"]),
  cart: defineTable({
    userId: v.id("users"),
    items: v.array(
      v.object({
        productId: v.id("products"),
        quantity: v.number(),
      })
    ),
  }).index("by_userId", ["userId"]),
});
`

const convexUsersContent = `import { internalMutation } from "./_generated/server";
import { v } from "convex/values";

export const create = internalMutation({
  args: {
    clerkId: v.string(),
    name: v.string(),
  },
  handler: async (ctx, args) => {
    // Verifica se já existe um usuário com este clerkId
    const existingUser = await ctx.db
      .query("users")
      .withIndex("by_clerk_id", (q) => q.eq("clerkId", args.clerkId))
      .unique();

    if (existingUser) {
        return existingUser._id;
    }

    // Se não existir, cria um novo usuário
    return await ctx.db.insert("users", {
      clerkId: args.clerkId,
      name: args.name,
    });
  },
});
`

const convexCartContent = `import { query, mutation } from "./_generated/server";
import { v } from "convex/values";

const requireUser = async (ctx: any) => {
    const identity = await ctx.auth.getUserIdentity();
    if (!identity) {
        throw new Error("Autenticação necessária para acessar o carrinho.");
    }
    const user = await ctx.db
        .query("users")
        .withIndex("by_clerk_id", (q: any) => q.eq("clerkId", identity.subject))
        .unique();
    if (!user) {
        throw new Error("Usuário não encontrado.");
    }
    return user;
};

// Busca o carrinho do usuário autenticado
export const get = query({
  args: {},
  handler: async (ctx) => {
    const identity = await ctx.auth.getUserIdentity();
    if (!identity) return null;
    const user = await ctx.db
        .query("users")
        .withIndex("by_clerk_id", (q) => q.eq("clerkId", identity.subject))
        .unique();
    if (!user) return null;
    return await ctx.db
        .query("cart")
        .withIndex("by_userId", (q) => q.eq("userId", user._id))
        .unique();
  },
});

// Adiciona um item ao carrinho (protegido)
export const addItem = mutation({
    args: { productId: v.id("products"), quantity: v.number() },
    handler: async (ctx, args) => {
        const user = await requireUser(ctx);
        const cart = await ctx.db
            .query("cart")
            .withIndex("by_userId", (q) => q.eq("userId", user._id))
            .unique();
        if (!cart) {
            await ctx.db.insert("cart", { userId: user._id, items: [args] });
            return;
        }
        const existing = cart.items.find((i) => i.productId === args.productId);
        const items = existing
            ? cart.items.map((i) => i.productId === args.productId
                ? { ...i, quantity: i.quantity + args.quantity }
                : i)
            : [...cart.items, args];
        await ctx.db.patch(cart._id, { items });
    }
});

// Remove um item do carrinho (protegido)
export const removeItem = mutation({
    args: { productId: v.id("products") },
    handler: async (ctx, args) => {
        const user = await requireUser(ctx);
        const cart = await ctx.db
            .query("cart")
            .withIndex("by_userId", (q) => q.eq("userId", user._id))
            .unique();
        if (!cart) return;
        await ctx.db.patch(cart._id, {
            items: cart.items.filter((i) => i.productId !== args.productId),
        });
    }
});

// Esvazia o carrinho (protegido)
export const clear = mutation({
    args: {},
    handler: async (ctx) => {
        const user = await requireUser(ctx);
        const cart = await ctx.db
            .query("cart")
            .withIndex("by_userId", (q) => q.eq("userId", user._id))
            .unique();
        if (cart) {
            await ctx.db.patch(cart._id, { items: [] });
        }
    }
});
`

const storeLayoutContent = `import type { Metadata } from "next";
import "./globals.css";
import Header from "@/components/Header";
import ConvexProviderWithClerk from "./ConvexProviderWithClerk";

export const metadata: Metadata = {
  title: "Loja Simples",
  description: "Uma loja de exemplo gerada automaticamente com Next.js e Convex.",
};

export default function RootLayout({
  children,
}: Readonly<{
  children: React.ReactNode;
}>) {
  return (
    <html lang="pt-BR">
      <body>
        <ConvexProviderWithClerk>
          <Header />
          <main>{children}</main>
        </ConvexProviderWithClerk>
      </body>
    </html>
  );
}
`

const convexProviderWithClerkContent = `"use client";

import { ClerkProvider, useAuth } from "@clerk/nextjs";
import { ConvexProviderWithClerk } from "convex/react-clerk";
import { ConvexReactClient } from "convex/react";
import { ReactNode } from "react";

const convex = new ConvexReactClient(process.env.NEXT_PUBLIC_CONVEX_URL!);

export default function ConvexClientProvider({ children }: { children: ReactNode }) {
  return (
    <ClerkProvider>
      <ConvexProviderWithClerk client={convex} useAuth={useAuth}>
        {children}
      </ConvexProviderWithClerk>
    </ClerkProvider>
  );
}
`

const storeHomePageContent = `"use client";

import { useEffect } from "react";
import { useQuery, useMutation } from "convex/react";
import { api } from "@/convex/_generated/api";
import ProductCard from "@/components/ProductCard";
import styles from "./page.module.css";

export default function Home() {
  const products = useQuery(api.products.get);
  const seed = useMutation(api.products.seed);

  // Popula o banco com os dados de exemplo na primeira visita.
  useEffect(() => {
    seed({});
  }, [seed]);

  return (
    <div className={styles.container}>
      <h1 className={styles.title}>Nossos Produtos</h1>
      <div className={styles.grid}>
        {products?.map((product) => (
          <ProductCard key={product._id} product={product} />
        ))}
      </div>
    </div>
  );
}
`

const storeHomePageCssContent = `.container {
  max-width: 1100px;
  margin: 0 auto;
  padding: 2rem 1rem;
}

.title {
  font-size: 2rem;
  margin-bottom: 1.5rem;
}

.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 1.5rem;
}
`

const storeGlobalsCssContent = `:root {
  --background: #111827;
  --foreground: #f9fafb;
  --accent: #22d3ee;
}

* {
  box-sizing: border-box;
  padding: 0;
  margin: 0;
}

body {
  color: var(--foreground);
  background: var(--background);
  font-family: Arial, Helvetica, sans-serif;
}

a {
  color: inherit;
  text-decoration: none;
}
`

const storeHeaderContent = `"use client";

import Link from "next/link";
import { SignInButton, UserButton, SignedIn, SignedOut } from "@clerk/nextjs";
import styles from "./Header.module.css";

export default function Header() {
  return (
    <header className={styles.header}>
      <Link href="/" className={styles.logo}>
        Loja Simples
      </Link>
      <nav className={styles.nav}>
        <Link href="/cart">Carrinho</Link>
        <Link href="/admin">Admin</Link>
        <SignedOut>
          <SignInButton mode="modal" />
        </SignedOut>
        <SignedIn>
          <UserButton afterSignOutUrl="/" />
        </SignedIn>
      </nav>
    </header>
  );
}
`

const storeHeaderCssContent = `.header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem 2rem;
  border-bottom: 1px solid #374151;
}

.logo {
  font-weight: 700;
  font-size: 1.25rem;
  color: var(--accent);
}

.nav {
  display: flex;
  gap: 1.5rem;
  align-items: center;
}
`

const storeProductCardContent = `"use client";

import { useMutation } from "convex/react";
import { api } from "@/convex/_generated/api";
import { Product } from "@/types";
import styles from "./ProductCard.module.css";

export default function ProductCard({ product }: { product: Product }) {
  const addToCart = useMutation(api.cart.addItem);

  return (
    <div className={styles.card}>
      <img src={product.imageUrl} alt={product.name} className={styles.image} />
      <h2 className={styles.name}>{product.name}</h2>
      <p className={styles.description}>{product.description}</p>
      <span className={styles.price}>
        {product.price.toLocaleString("pt-BR", { style: "currency", currency: "BRL" })}
      </span>
      <button
        className={styles.button}
        disabled={product.stock === 0}
        onClick={() => addToCart({ productId: product._id, quantity: 1 })}
      >
        {product.stock > 0 ? "Adicionar ao Carrinho" : "Esgotado"}
      </button>
    </div>
  );
}
`

const storeProductCardCssContent = `.card {
  background: #1f2937;
  border: 1px solid #374151;
  border-radius: 0.5rem;
  padding: 1rem;
  display: flex;
  flex-direction: column;
  gap: 0.5rem;
}

.image {
  width: 100%;
  aspect-ratio: 1 / 1;
  object-fit: cover;
  border-radius: 0.375rem;
}

.name {
  font-size: 1.1rem;
}

.description {
  color: #9ca3af;
  font-size: 0.875rem;
  flex-grow: 1;
}

.price {
  font-weight: 700;
  color: var(--accent);
}

.button {
  background: var(--accent);
  color: #111827;
  font-weight: 600;
  border: none;
  border-radius: 0.375rem;
  padding: 0.6rem;
  cursor: pointer;
}

.button:disabled {
  background: #374151;
  color: #6b7280;
  cursor: not-allowed;
}
`

const storeTypesContent = `import { Id } from "@/convex/_generated/dataModel";

export interface Product {
  _id: Id<"products">;
  name: string;
  price: number;
  description: string;
  category: string;
  stock: number;
  imageUrl: string;
}

export interface CartItem {
  productId: Id<"products">;
  quantity: number;
}
`

var storeProject = Project{
	Name: "Loja Simples",
	Slug: "loja-simples-com-convex",
	Lifecycle: []string{
		"Definindo Schema de Dados no Convex",
		"Configurando Autenticação com Clerk",
		"Criando Queries e Mutations do Backend",
		"Protegendo Rotas e Endpoints da API",
		"Conectando Componentes React ao Backend",
		"Implementando Funcionalidades Reativas",
		"Empacotando projeto Full-Stack com Next.js e Convex",
	},
	Files: types.FileMap{
		"convex/auth.config.ts":                   types.TextEntry(convexAuthConfigContent),
		"convex/cart.ts":                          types.TextEntry(convexCartContent),
		"convex/products.ts":                      types.TextEntry(defaultProductsFileContent),
		"convex/schema.ts":                        types.TextEntry(convexSchemaContent),
		"convex/users.ts":                         types.TextEntry(convexUsersContent),
		"src/app/ConvexProviderWithClerk.tsx":     types.TextEntry(convexProviderWithClerkContent),
		"src/app/favicon.ico":                     types.BinaryEntry(faviconBase64Content),
		"src/app/globals.css":                     types.TextEntry(storeGlobalsCssContent),
		"src/app/layout.tsx":                      types.TextEntry(storeLayoutContent),
		"src/app/page.tsx":                        types.TextEntry(storeHomePageContent),
		"src/app/page.module.css":                 types.TextEntry(storeHomePageCssContent),
		"src/components/Header.tsx":               types.TextEntry(storeHeaderContent),
		"src/components/Header.module.css":        types.TextEntry(storeHeaderCssContent),
		"src/components/ProductCard.tsx":          types.TextEntry(storeProductCardContent),
		"src/components/ProductCard.module.css":   types.TextEntry(storeProductCardCssContent),
		"src/types/index.ts":                      types.TextEntry(storeTypesContent),
		"src/convex/_generated/api.d.ts":          types.TextEntry("// This file is auto-generated by Convex. Do not edit."),
		"src/convex/_generated/dataModel.d.ts":    types.TextEntry("// This file is auto-generated by Convex. Do not edit."),
		"public/.placeholder":                     types.TextEntry(""),
		"package.json":                            types.TextEntry(storePackageJsonContent),
		".env.local.example":                      types.TextEntry(storeEnvExampleContent),
		"next.config.js":                          types.TextEntry(nextConfigContent),
		"tsconfig.json":                           types.TextEntry(tsConfigContent),
		"postcss.config.js":                       types.TextEntry(postcssConfigContent),
		"convex.json":                             types.TextEntry(convexJsonContent),
		".gitignore":                              types.TextEntry(gitignoreContent),
		"README.md":                               types.TextEntry(storeReadmeContent),
	},
}
