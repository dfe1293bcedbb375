package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an OpenAI call failed with a transient error
// worth one retry (rate limits, 5xx, transport hiccups).
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// DetermineFileType maps a filename to the language tag used by the file
// viewer for syntax highlighting. Unknown extensions get "plaintext".
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	switch filepath.Ext(lowerFilename) {
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".js", ".jsx":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".yaml", ".yml":
		return "yaml"
	case ".sh":
		return "bash"
	case ".ico", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return "image"
	default:
		base := filepath.Base(lowerFilename)
		// Dotfiles and extensionless config files common in generated projects.
		if base == ".gitignore" || base == ".env" || strings.HasPrefix(base, ".env.") {
			return "bash"
		}
		if strings.Contains(base, "dockerfile") {
			return "dockerfile"
		}
		return "plaintext"
	}
}
