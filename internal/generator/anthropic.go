package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/semaphore"

	"github.com/instabio/bioforge/internal/types"
)

// Bio generation is a simple creative-writing task, so the
// cost-efficient model is the default. Override with BIOFORGE_MODEL.
const (
	// ModelHaiku is the cost-efficient default for bio generation.
	ModelHaiku = "claude-3-5-haiku-20241022"

	// ModelSonnet is available for higher-quality output.
	ModelSonnet = "claude-sonnet-4-5-20250929"
)

// DefaultModel returns the generation model, checking BIOFORGE_MODEL first.
func DefaultModel() string {
	if model := os.Getenv("BIOFORGE_MODEL"); model != "" {
		return model
	}
	return ModelHaiku
}

// defaultCount is how many candidates one call asks for when the
// request doesn't say.
const defaultCount = 6

// Config holds Anthropic generator configuration.
type Config struct {
	APIKey string      // Anthropic API key (if empty, reads from ANTHROPIC_API_KEY env var)
	Model  string      // Model to use (default: DefaultModel())
	Retry  RetryConfig // Retry configuration (uses defaults if not specified)
}

// AnthropicGenerator implements Generator against the Anthropic
// Messages API.
type AnthropicGenerator struct {
	client  *anthropic.Client
	model   string
	retry   RetryConfig
	breaker *CircuitBreaker
	sem     *semaphore.Weighted
}

// Compile-time check that AnthropicGenerator implements Generator.
var _ Generator = (*AnthropicGenerator)(nil)

// NewAnthropicGenerator creates a generator backed by the Anthropic API.
func NewAnthropicGenerator(cfg *Config) (*AnthropicGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel()
	}

	retry := cfg.Retry
	if retry.MaxRetries == 0 {
		retry = DefaultRetryConfig()
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	var breaker *CircuitBreaker
	if retry.CircuitBreakerEnabled {
		breaker = NewCircuitBreaker(retry.FailureThreshold, retry.SuccessThreshold, retry.OpenTimeout)
	}

	var sem *semaphore.Weighted
	if retry.MaxConcurrentCalls > 0 {
		sem = semaphore.NewWeighted(int64(retry.MaxConcurrentCalls))
	}

	return &AnthropicGenerator{
		client:  &client,
		model:   model,
		retry:   retry,
		breaker: breaker,
		sem:     sem,
	}, nil
}

// GenerateBios requests candidate bios for the given parameter set.
func (g *AnthropicGenerator) GenerateBios(ctx context.Context, req Request) ([]string, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameter set: %w", err)
	}

	count := req.Count
	if count <= 0 {
		count = defaultCount
	}

	prompt := buildBioPrompt(req.Params, count)
	maxTokens := count*120 + 200

	startTime := time.Now()
	var response *anthropic.Message
	err := g.retryWithBackoff(ctx, "generate_bios", func(attemptCtx context.Context) error {
		resp, apiErr := g.client.Messages.New(attemptCtx, anthropic.MessageNewParams{
			Model:     anthropic.Model(g.model),
			MaxTokens: int64(maxTokens),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if apiErr != nil {
			return apiErr
		}
		response = resp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API call failed: %w", err)
	}

	var responseText string
	for _, block := range response.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	bios, err := ExtractBios(responseText)
	if err != nil {
		return nil, fmt.Errorf("parsing generation response: %w", err)
	}

	log.Printf("[GEN] generate_bios (%s): %d candidates, input=%d output=%d tokens, %v",
		req.Params.Category, len(bios), response.Usage.InputTokens, response.Usage.OutputTokens,
		time.Since(startTime).Round(time.Millisecond))

	return bios, nil
}

// buildBioPrompt builds the generation prompt from a parameter set.
func buildBioPrompt(p types.ParameterSet, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are writing Instagram bio suggestions.

PROFILE:
Interests: %s
Profession: %s
Personality: %s
Tone: %s
Style: %s
Category: %s
`, p.Interests, p.Profession, p.Personality, p.Tone, p.Style, p.Category)

	format := p.Format
	if format == "" {
		format = "three short lines"
	}
	fmt.Fprintf(&sb, "Format: each bio is %s, separated by newline characters within the bio.\n", format)

	if p.Instructions != "" {
		fmt.Fprintf(&sb, "Additional instructions: %s\n", p.Instructions)
	}

	fmt.Fprintf(&sb, `
TASK:
Write %d distinct bios matching the profile above. Every bio must differ
from the others in wording, structure, and imagery — do not reuse
phrases between bios.

OUTPUT FORMAT (JSON only, no markdown):
{
  "bios": [
    "line one\nline two\nline three"
  ]
}

IMPORTANT: Respond with ONLY raw JSON. Do NOT wrap it in markdown code fences.`, count)

	return sb.String()
}
