package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"scaffold_ai_server/internal/types"
)

var productFields = []string{"name", "price", "description", "category", "stock"}

// parseProducts extracts a validated product list from raw LLM output.
// The model is asked for {"products": [...]} but real responses drift, so a
// bare array and a few common wrapper keys are also accepted. Every record is
// validated strictly against the 5-field shape; a malformed record rejects
// the whole response.
func parseProducts(llmOutput string) ([]types.Product, error) {
	cleaned := strings.TrimSpace(llmOutput)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// Attempt 1: the documented shape, an object wrapping the array.
	keysToTry := []string{"products", "items", "result", "data", "output"}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err == nil {
		for _, key := range keysToTry {
			if rawList, ok := wrapper[key]; ok {
				var rawProducts []json.RawMessage
				if err := json.Unmarshal(rawList, &rawProducts); err == nil {
					return validateProducts(rawProducts)
				}
			}
		}
	}

	// Attempt 2: a bare array.
	var rawProducts []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &rawProducts); err == nil {
		return validateProducts(rawProducts)
	}

	return nil, fmt.Errorf("LLM output is not a product list in any recognized shape")
}

func validateProducts(rawProducts []json.RawMessage) ([]types.Product, error) {
	products := make([]types.Product, 0, len(rawProducts))
	for i, raw := range rawProducts {
		p, err := validateProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("product %d failed validation: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// validateProduct rejects any record that does not match the exact 5-field
// shape. Missing fields, extra fields, and wrong types are all rejected
// rather than coerced.
func validateProduct(raw json.RawMessage) (types.Product, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return types.Product{}, fmt.Errorf("record is not an object: %w", err)
	}
	for _, field := range productFields {
		if _, ok := keys[field]; !ok {
			return types.Product{}, fmt.Errorf("missing field %q", field)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var p types.Product
	if err := dec.Decode(&p); err != nil {
		return types.Product{}, err
	}

	if p.Name == "" {
		return types.Product{}, fmt.Errorf("empty product name")
	}
	if p.Stock < 0 {
		return types.Product{}, fmt.Errorf("negative stock %d", p.Stock)
	}
	return p, nil
}
