package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// GeminiProvider implements the Provider interface on the Gemini API with
// the Google Search tool enabled, so answers come with grounding citations
type GeminiProvider struct {
	client *genai.Client
	config Config
}

// NewGeminiProvider creates a Gemini-backed provider
func NewGeminiProvider(config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, config: config}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Analyze sends the directive (plus image part, when present) with search
// augmentation enabled and extracts the grounding chunks as citations
func (p *GeminiProvider) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	modelName := p.modelName(req.Model)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.config.timeout())
	defer cancel()

	var contents []*genai.Content
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts := []*genai.Part{
			genai.NewPartFromBytes(req.Image, mime),
			genai.NewPartFromText(req.Directive),
		}
		contents = []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	} else {
		contents = genai.Text(req.Directive)
	}

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := p.client.Models.GenerateContent(ctxWithTimeout, modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no usable text in gemini response")
	}

	return &AnalyzeResponse{
		Text:      text,
		Citations: groundingCitations(resp),
		Model:     modelName,
	}, nil
}

// FetchNews constrains the answer to a JSON array matching the NewsItem
// schema while keeping search augmentation on
func (p *GeminiProvider) FetchNews(ctx context.Context, req NewsRequest) (string, error) {
	modelName := p.modelName(req.Model)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.config.timeout())
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   newsItemSchema(),
	}

	resp, err := p.client.Models.GenerateContent(ctxWithTimeout, modelName, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	return resp.Text(), nil
}

func (p *GeminiProvider) modelName(override string) string {
	if override != "" {
		return override
	}
	if p.config.Model != "" {
		return p.config.Model
	}
	return defaultGeminiModel
}

// groundingCitations lifts web grounding chunks into citations; entries
// without a web identity are left for the parser to drop
func groundingCitations(resp *genai.GenerateContentResponse) []model.Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var citations []model.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		citations = append(citations, model.Citation{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return citations
}

func newsItemSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":         {Type: genai.TypeString},
				"url":           {Type: genai.TypeString},
				"source":        {Type: genai.TypeString},
				"publishedDate": {Type: genai.TypeString},
				"summary":       {Type: genai.TypeString},
			},
		},
	}
}
