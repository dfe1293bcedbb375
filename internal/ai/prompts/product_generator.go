package prompts

import "fmt"

// GetProductGenerationPrompt returns the prompt that asks the LLM for a
// themed product catalog. The response contract is a JSON object wrapping an
// array of records with exactly the five catalog fields.
func GetProductGenerationPrompt(theme string, count int) string {
	return fmt.Sprintf(`
		Gere uma lista de %d produtos de exemplo para uma loja de e-commerce com o tema: "%s".

		Cada produto deve ser um objeto JSON com exatamente estes campos:

		- "name": nome criativo e curto para o produto
		- "price": preço do produto em BRL como número (ex: 49.90)
		- "description": descrição concisa e atrativa com no máximo 100 caracteres
		- "category": categoria principal do produto (ex: Roupas, Acessórios)
		- "stock": quantidade em estoque, um número inteiro entre 10 e 50

		Respond with a JSON object in the following format:

		`+"```json"+`
		{
			"products": [
				{
					"name": "...",
					"price": 49.90,
					"description": "...",
					"category": "...",
					"stock": 25
				},
				...
			]
		}
		`+"```"+`

		Only include the JSON object — no extra explanation. Your output will be parsed as the store catalog.
	`, count, theme)
}

// GetProductImagePrompt returns the prompt for one product's studio photo.
func GetProductImagePrompt(productName, productDescription string) string {
	return fmt.Sprintf(
		`Uma foto de estúdio profissional e de alta qualidade do produto: "%s", que é "%s". O fundo deve ser limpo e minimalista, em cor sólida.`,
		productName, productDescription)
}
