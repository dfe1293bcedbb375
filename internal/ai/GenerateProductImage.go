package ai

import (
	"context"
	"errors"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"scaffold_ai_server/internal/ai/prompts"
	"scaffold_ai_server/internal/utils"
)

// FetchImage synthesizes one product photo and returns it as base64-encoded
// PNG bytes. The caller treats any error as "image absent" and falls back to
// a placeholder; one failed image never aborts the batch.
func (g *Generator) FetchImage(ctx context.Context, productName, productDescription string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         prompts.GetProductImagePrompt(productName, productDescription),
		Model:          g.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}

	resp, err := g.client.CreateImage(ctx, req)

	if err != nil && utils.ShouldRetry(err) {
		log.Printf("OpenAI image generation for %q failed, retrying once... Error: %v", productName, err)
		time.Sleep(1 * time.Second)
		resp, err = g.client.CreateImage(ctx, req)
	}

	if err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", errors.New("openai returned no image data")
	}

	return resp.Data[0].B64JSON, nil
}
