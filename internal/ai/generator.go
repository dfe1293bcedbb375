package ai

import (
	openai "github.com/sashabaranov/go-openai"
)

// Generator wraps the OpenAI client used for product copy and product images.
type Generator struct {
	client       *openai.Client
	textModel    string
	imageModel   string
	productCount int
}

// NewGenerator builds a Generator. The API key is validated by config before
// this is ever called.
func NewGenerator(apiKey, textModel, imageModel string, productCount int) *Generator {
	client := openai.NewClient(apiKey)
	return &Generator{
		client:       client,
		textModel:    textModel,
		imageModel:   imageModel,
		productCount: productCount,
	}
}
