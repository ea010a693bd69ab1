package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"cvgen/internal/model"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-flash-lite-latest"

const translatePrompt = `Translate the following JSON resume from French to English.
Rules:
- Keep the exact JSON structure and all field names unchanged.
- Translate all French text values to professional English.
- In the skills section, translate the group names but keep the keywords as they are.
- Translate "DUT" as "Two-year University Technology Degree".
- Translate "Ingénieur" (as a degree) as "Master's Degree".
- Translate "Génie Informatique" as "Computer Science".
- Keep technology names, company names and dates unchanged.
- Return only the JSON document, nothing else.

`

// GeminiTranslator translates resume records through the Gemini API,
// with a file cache next to the input so repeated runs on an unchanged
// record cost nothing.
type GeminiTranslator struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiTranslator builds a translator. apiKey is required; model
// falls back to DefaultModel when empty.
func NewGeminiTranslator(ctx context.Context, apiKey, modelName string, log *zap.Logger) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiTranslator{client: client, model: modelName, log: log}, nil
}

// Translate returns the English version of raw, a French JSON resume.
// inputPath locates the cache files: <stem>.en.json holds the last
// translation and <stem>.en.hash its cache key, so the API is only
// called when the input bytes or the model change.
func (t *GeminiTranslator) Translate(ctx context.Context, raw []byte, inputPath string) (*model.Resume, error) {
	key := cacheKey(raw, t.model)
	jsonPath, hashPath := cachePaths(inputPath)

	if cached := t.readCache(jsonPath, hashPath, key); cached != nil {
		return cached, nil
	}

	t.log.Info("translating resume", zap.String("model", t.model))
	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(translatePrompt+string(raw)), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}

	body := extractJSON(resp.Text())
	translated, err := model.Parse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("parse translated resume: %w", err)
	}

	t.writeCache(jsonPath, hashPath, []byte(body), key)
	return translated, nil
}

func (t *GeminiTranslator) readCache(jsonPath, hashPath, key string) *model.Resume {
	stored, err := os.ReadFile(hashPath)
	if err != nil || strings.TrimSpace(string(stored)) != key {
		return nil
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil
	}
	cached, err := model.Parse(data)
	if err != nil {
		t.log.Warn("discarding invalid translation cache", zap.String("path", jsonPath), zap.Error(err))
		return nil
	}
	t.log.Info("using cached translation", zap.String("path", jsonPath))
	return cached
}

func (t *GeminiTranslator) writeCache(jsonPath, hashPath string, body []byte, key string) {
	if err := os.WriteFile(jsonPath, body, 0o644); err != nil {
		t.log.Warn("cannot write translation cache", zap.String("path", jsonPath), zap.Error(err))
		return
	}
	if err := os.WriteFile(hashPath, []byte(key), 0o644); err != nil {
		t.log.Warn("cannot write translation cache key", zap.String("path", hashPath), zap.Error(err))
	}
}

// cacheKey ties a cached translation to both the input bytes and the
// model that produced it.
func cacheKey(raw []byte, modelName string) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]) + ":" + modelName
}

func cachePaths(inputPath string) (jsonPath, hashPath string) {
	stem := strings.TrimSuffix(inputPath, ".json")
	return stem + ".en.json", stem + ".en.hash"
}

// extractJSON peels markdown code fences off a model reply and, failing
// that, cuts the outermost brace pair. Models add fences despite the
// prompt asking for bare JSON.
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		return strings.TrimSpace(s)
	}
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}
