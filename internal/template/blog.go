package template

import "scaffold_ai_server/internal/types"

// --- TEMPLATES FOR THE 'BLOG' PROJECT ---

const blogPackageJsonContent = `{
  "name": "blog-pessoal-nextjs",
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
    "gray-matter": "^4.0.3",
    "remark": "^15.0.1",
    "remark-html": "^16.0.1"
  },
  "devDependencies": {
    "typescript": "^5",
    "@types/node": "^20",
    "@types/react": "^18",
    "@types/react-dom": "^18"
  }
}`

const blogReadmeContent = "# Blog Pessoal - Projeto Next.js\n" +
	"Este é um projeto Next.js gerado automaticamente.\n" +
	"\n" +
	"## Como Executar\n" +
	"1.  Descompacte o arquivo .zip\n" +
	"2.  Abra o terminal na pasta do projeto.\n" +
	"3.  Execute `npm install` para instalar as dependências.\n" +
	"4.  Execute `npm run dev` para iniciar o servidor de desenvolvimento.\n" +
	"5.  Abra [http://localhost:3000](http://localhost:3000) no seu navegador.\n"

const blogLayoutContent = `import type { Metadata } from "next";
import "./globals.css";
import Header from "@/components/Header";
import Footer from "@/components/Footer";

export const metadata: Metadata = {
  title: "Blog Pessoal",
  description: "Um blog pessoal gerado automaticamente com Next.js.",
};

export default function RootLayout({
  children,
}: Readonly<{
  children: React.ReactNode;
}>) {
  return (
    <html lang="pt-BR">
      <body>
        <Header />
        <main>{children}</main>
        <Footer />
      </body>
    </html>
  );
}
`

const blogGlobalsCssContent = `:root {
  --primary-color: #bb86fc;
  --background-color: #121212;
  --text-color: #e0e0e0;
}

* {
  box-sizing: border-box;
  padding: 0;
  margin: 0;
}

body {
  background-color: var(--background-color);
  color: var(--text-color);
  font-family: Georgia, "Times New Roman", serif;
  line-height: 1.7;
}

a {
  color: var(--primary-color);
  text-decoration: none;
}

main {
  max-width: 720px;
  margin: 0 auto;
  padding: 2rem 1rem;
}
`

const blogHomePageContent = `import Link from "next/link";
import { getSortedPostsData } from "@/lib/posts";
import styles from "./page.module.css";

export default function Home() {
  const posts = getSortedPostsData();

  return (
    <section>
      <h1 className={styles.title}>Últimos Posts</h1>
      <ul className={styles.list}>
        {posts.map(({ slug, title, date, excerpt }) => (
          <li key={slug} className={styles.item}>
            <Link href={"/posts/" + slug}>
              <h2>{title}</h2>
            </Link>
            <small>{date}</small>
            <p>{excerpt}</p>
          </li>
        ))}
      </ul>
    </section>
  );
}
`

const blogHomePageCssContent = `.title {
  font-size: 2rem;
  margin-bottom: 2rem;
}

.list {
  list-style: none;
}

.item {
  margin-bottom: 2.5rem;
}

.item small {
  color: #9e9e9e;
}
`

const blogPostPageContent = `import { getAllPostSlugs, getPostData } from "@/lib/posts";
import styles from "./page.module.css";

export async function generateStaticParams() {
  return getAllPostSlugs().map((slug) => ({ slug }));
}

export default async function Post({ params }: { params: { slug: string } }) {
  const post = await getPostData(params.slug);

  return (
    <article className={styles.article}>
      <h1>{post.title}</h1>
      <small>{post.date}</small>
      <div dangerouslySetInnerHTML={{ __html: post.contentHtml }} />
    </article>
  );
}
`

const blogPostPageCssContent = `.article h1 {
  margin-bottom: 0.5rem;
}

.article small {
  color: #9e9e9e;
  display: block;
  margin-bottom: 2rem;
}

.article pre {
  background: #1e1e1e;
  padding: 1rem;
  border-radius: 0.375rem;
  overflow-x: auto;
}
`

const blogAboutPageContent = `export default function About() {
  return (
    <section>
      <h1>Sobre</h1>
      <p>
        Este blog foi gerado automaticamente como ponto de partida para um site
        pessoal. Os posts vivem em arquivos Markdown dentro de{" "}
        <code>src/posts</code> e são convertidos para HTML durante o build.
      </p>
    </section>
  );
}
`

const blogHeaderContent = `import Link from "next/link";
import styles from "./Header.module.css";

export default function Header() {
  return (
    <header className={styles.header}>
      <Link href="/" className={styles.logo}>
        Blog Pessoal
      </Link>
      <nav>
        <Link href="/about">Sobre</Link>
      </nav>
    </header>
  );
}
`

const blogHeaderCssContent = `.header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: 720px;
  margin: 0 auto;
  padding: 1.5rem 1rem;
}

.logo {
  font-weight: 700;
  font-size: 1.25rem;
}
`

const blogFooterContent = `import styles from "./Footer.module.css";

export default function Footer() {
  return (
    <footer className={styles.footer}>
      <p>Feito com Next.js. Conteúdo sob licença CC BY-SA.</p>
    </footer>
  );
}
`

const blogFooterCssContent = `.footer {
  max-width: 720px;
  margin: 3rem auto 0;
  padding: 1.5rem 1rem;
  border-top: 1px solid #2e2e2e;
  color: #9e9e9e;
  font-size: 0.875rem;
}
`

const blogPostsLibContent = `import fs from "fs";
import path from "path";
import matter from "gray-matter";
import { remark } from "remark";
import html from "remark-html";

const postsDirectory = path.join(process.cwd(), "src/posts");

export function getSortedPostsData() {
  const fileNames = fs.readdirSync(postsDirectory);
  const allPostsData = fileNames.map((fileName) => {
    const slug = fileName.replace(/\.md$/, "");
    const fullPath = path.join(postsDirectory, fileName);
    const fileContents = fs.readFileSync(fullPath, "utf8");
    const matterResult = matter(fileContents);

    return {
      slug,
      title: matterResult.data.title as string,
      date: matterResult.data.date as string,
      excerpt: matterResult.data.excerpt as string,
    };
  });

  return allPostsData.sort((a, b) => (a.date < b.date ? 1 : -1));
}

export function getAllPostSlugs() {
  return fs.readdirSync(postsDirectory).map((f) => f.replace(/\.md$/, ""));
}

export async function getPostData(slug: string) {
  const fullPath = path.join(postsDirectory, slug + ".md");
  const fileContents = fs.readFileSync(fullPath, "utf8");
  const matterResult = matter(fileContents);

  const processedContent = await remark().use(html).process(matterResult.content);

  return {
    slug,
    contentHtml: processedContent.toString(),
    title: matterResult.data.title as string,
    date: matterResult.data.date as string,
  };
}
`

const blogSamplePost1Content = `---
title: 'Meu Primeiro Post'
date: '2024-01-15'
excerpt: 'As primeiras palavras deste blog, sobre por que escrever na internet ainda vale a pena.'
---

## Bem-vindo!

Este é o primeiro post deste blog. Escrever na internet continua sendo uma das
melhores formas de organizar ideias e compartilhar aprendizados.

### O que esperar por aqui

- Notas sobre desenvolvimento web
- Experimentos com novas ferramentas
- Reflexões ocasionais sobre a profissão

Este é apenas o começo. Fique ligado para mais conteúdo!
`

const blogSamplePost2Content = "---\n" +
	"title: 'A Importância de um CSS Limpo'\n" +
	"date: '2024-02-20'\n" +
	"excerpt: 'Reflexões sobre como uma boa organização de CSS pode transformar um projeto, tornando-o mais manutenível e escalável.'\n" +
	"---\n" +
	"\n" +
	"## CSS não precisa ser uma bagunça\n" +
	"\n" +
	"Muitos desenvolvedores têm uma relação de amor e ódio com CSS. No entanto, com as abordagens certas, ele pode ser um grande aliado.\n" +
	"\n" +
	"### Estratégias para um CSS Melhor\n" +
	"\n" +
	"1.  **Metodologias como BEM**: Usar convenções de nomenclatura ajuda a evitar conflitos.\n" +
	"2.  **CSS-in-JS**: Ferramentas como Styled Components ou Emotion trazem o CSS para dentro do seu componente, melhorando o escopo.\n" +
	"3.  **Variáveis CSS (Custom Properties)**: Elas são extremamente poderosas para criar sistemas de design consistentes e temas.\n" +
	"\n" +
	"```css\n" +
	":root {\n" +
	"  --primary-color: #bb86fc;\n" +
	"  --background-color: #121212;\n" +
	"}\n" +
	"\n" +
	"body {\n" +
	"  background-color: var(--background-color);\n" +
	"  color: var(--primary-color);\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"Investir tempo em organizar seu CSS no início de um projeto sempre compensa a longo prazo.\n"

var blogProject = Project{
	Name: "Blog Pessoal",
	Slug: "blog-pessoal-com-nextjs",
	Lifecycle: []string{
		"Configurando Roteamento Dinâmico",
		"Criando Layouts com Next.js",
		"Implementando Geração de Páginas Estáticas (SSG)",
		"Processando Markdown para HTML",
		"Estilizando Componentes com CSS Modules",
		"Finalizando Estrutura de Arquivos",
		"Empacotando projeto com Next.js",
	},
	Files: types.FileMap{
		"src/app/about/page.tsx":                types.TextEntry(blogAboutPageContent),
		"src/app/posts/[slug]/page.tsx":         types.TextEntry(blogPostPageContent),
		"src/app/posts/[slug]/page.module.css":  types.TextEntry(blogPostPageCssContent),
		"src/app/favicon.ico":                   types.BinaryEntry(faviconBase64Content),
		"src/app/globals.css":                   types.TextEntry(blogGlobalsCssContent),
		"src/app/layout.tsx":                    types.TextEntry(blogLayoutContent),
		"src/app/page.tsx":                      types.TextEntry(blogHomePageContent),
		"src/app/page.module.css":               types.TextEntry(blogHomePageCssContent),
		"src/components/Header.tsx":             types.TextEntry(blogHeaderContent),
		"src/components/Header.module.css":      types.TextEntry(blogHeaderCssContent),
		"src/components/Footer.tsx":             types.TextEntry(blogFooterContent),
		"src/components/Footer.module.css":      types.TextEntry(blogFooterCssContent),
		"src/lib/posts.ts":                      types.TextEntry(blogPostsLibContent),
		"src/posts/primeiro-post.md":            types.TextEntry(blogSamplePost1Content),
		"src/posts/css-limpo.md":                types.TextEntry(blogSamplePost2Content),
		"public/.placeholder":                   types.TextEntry(""),
		"package.json":                          types.TextEntry(blogPackageJsonContent),
		"next.config.js":                        types.TextEntry(nextConfigContent),
		"tsconfig.json":                         types.TextEntry(tsConfigContent),
		"postcss.config.js":                     types.TextEntry(postcssConfigContent),
		".gitignore":                            types.TextEntry(gitignoreContent),
		"README.md":                             types.TextEntry(blogReadmeContent),
	},
}
