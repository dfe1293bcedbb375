package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"scaffold_ai_server/internal/ai/prompts"
	"scaffold_ai_server/internal/types"
	"scaffold_ai_server/internal/utils"
)

// FetchProducts generates a themed product catalog and returns the validated
// record list. Any transport failure, unparseable output, or empty list is an
// error; the caller converts it into its content-generation failure.
func (g *Generator) FetchProducts(ctx context.Context, theme string) ([]types.Product, error) {
	fullPrompt := prompts.GetProductGenerationPrompt(theme, g.productCount)

	req := openai.ChatCompletionRequest{
		Model: g.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful AI assistant that generates e-commerce catalog data following strict formatting instructions."},
			{Role: openai.ChatMessageRoleUser, Content: fullPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3, // Lower temperature for more predictable catalog data
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)

	// Basic retry logic: one retry on transient failures
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("OpenAI product generation failed, retrying once after delay... Error: %v", err)
		time.Sleep(2 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}

	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for failed request: %+v", resp.Usage)
		return nil, errors.New("openai returned empty response")
	}

	products, err := parseProducts(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM catalog output: %w", err)
	}
	if len(products) == 0 {
		return nil, errors.New("LLM did not generate any products")
	}

	log.Printf("Successfully parsed %d products from LLM for theme %q", len(products), theme)
	return products, nil
}
