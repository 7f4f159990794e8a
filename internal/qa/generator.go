package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/IliaW/scraper-api/config"
	"github.com/IliaW/scraper-api/internal/model"
)

// charsPerToken is a rough estimate used to size chunks without a
// model-specific tokenizer.
const charsPerToken = 4

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name PairGenerator
type PairGenerator interface {
	Generate(ctx context.Context, result *model.CrawlResult, questionsPerChunk int,
		minConfidence float64) ([]model.QAPair, error)
}

// Generator produces question-answer pairs from crawled content by
// prompting an OpenAI-compatible chat completions endpoint, one chunk
// at a time. Failures on individual chunks are logged and skipped so a
// single bad response never loses the whole job.
type Generator struct {
	cfg    *config.QaConfig
	client *http.Client
}

func NewGenerator(cfg *config.QaConfig, client *http.Client) (*Generator, error) {
	if cfg.ApiKey == "" {
		return nil, errors.New("qa generator api key is not set")
	}

	return &Generator{
		cfg:    cfg,
		client: client,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type qaPayload struct {
	QaPairs []model.QAPair `json:"qa_pairs"`
}

func (g *Generator) Generate(ctx context.Context, result *model.CrawlResult, questionsPerChunk int,
	minConfidence float64) ([]model.QAPair, error) {
	if questionsPerChunk <= 0 {
		questionsPerChunk = g.cfg.QuestionsPerChunk
	}
	if minConfidence <= 0 {
		minConfidence = g.cfg.MinConfidenceScore
	}

	allPairs := make([]model.QAPair, 0)
	for _, page := range result.Pages {
		text := pageText(page)
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, chunk := range chunkText(text, g.cfg.ChunkSize*charsPerToken) {
			pairs, err := g.generateForChunk(ctx, chunk, questionsPerChunk, minConfidence)
			if err != nil {
				slog.Error("failed to generate qa pairs for chunk.", slog.String("url", page.URL),
					slog.String("err", err.Error()))
				continue
			}
			for i := range pairs {
				pairs[i].SourceURL = page.URL
			}
			allPairs = append(allPairs, pairs...)
		}
	}

	return dedupeByQuestion(allPairs), nil
}

// pageText joins the parts of a page the model should see: title,
// heading texts, and paragraphs. Code blocks are left out, matching the
// converter-independent text view of a page.
func pageText(page model.PageRecord) string {
	if page.Content == nil {
		return ""
	}
	parts := make([]string, 0, 1+len(page.Content.Headings)+len(page.Content.Paragraphs))
	if page.Content.Title != "" {
		parts = append(parts, page.Content.Title)
	}
	for _, heading := range page.Content.Headings {
		parts = append(parts, heading.Text)
	}
	parts = append(parts, page.Content.Paragraphs...)

	return strings.Join(parts, "\n\n")
}

// chunkText splits text into word-bounded chunks of at most maxChars
// characters.
func chunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	chunks := make([]string, 0)
	var b strings.Builder
	for _, word := range words {
		if b.Len() > 0 && b.Len()+len(word)+1 > maxChars {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}

	return chunks
}

func (g *Generator) generateForChunk(ctx context.Context, chunk string, questionsPerChunk int,
	minConfidence float64) ([]model.QAPair, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are an expert at creating question-answer pairs. Always respond with a " +
					"pure JSON object, without any markdown formatting or code blocks.",
			},
			{
				Role:    "user",
				Content: buildPrompt(chunk, questionsPerChunk),
			},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ApiUrl, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.ApiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			slog.Error("error closing response body", slog.String("err", err.Error()))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completions api responded with status %d: %s", resp.StatusCode, string(body))
	}

	var completion chatResponse
	if err = json.Unmarshal(body, &completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("completions api returned no choices")
	}

	var payload qaPayload
	cleaned := cleanJsonResponse(completion.Choices[0].Message.Content)
	if err = json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse qa payload: %w", err)
	}

	pairs := make([]model.QAPair, 0, len(payload.QaPairs))
	for _, pair := range payload.QaPairs {
		if validatePair(pair, minConfidence) {
			pairs = append(pairs, pair)
		}
	}

	return pairs, nil
}

func buildPrompt(content string, questionsPerChunk int) string {
	return fmt.Sprintf("Based on the following content, create %d question-answer pairs. "+
		"Return only a pure JSON object without any markdown formatting or code blocks, "+
		"using this exact structure:\n"+
		"{\"qa_pairs\": [\n"+
		"    {\"question\": \"<question text>\",\n"+
		"     \"answer\": \"<answer text>\",\n"+
		"     \"confidence_score\": 0.95,\n"+
		"     \"category\": \"<category>\"}\n"+
		"]}\n\n"+
		"Content:\n%s", questionsPerChunk, content)
}

// cleanJsonResponse strips markdown code fences and a leading "json"
// language tag that chat models sometimes wrap around the payload.
func cleanJsonResponse(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	content = strings.Join(kept, "\n")
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "json") {
		content = strings.TrimSpace(content[4:])
	}

	return content
}

func validatePair(pair model.QAPair, minConfidence float64) bool {
	if len(strings.Fields(pair.Question)) < 3 {
		return false
	}
	if len(strings.Fields(pair.Answer)) < 5 {
		return false
	}
	if pair.ConfidenceScore < 0 || pair.ConfidenceScore > 1 {
		return false
	}

	return pair.ConfidenceScore >= minConfidence
}

func dedupeByQuestion(pairs []model.QAPair) []model.QAPair {
	seen := make(map[string]struct{}, len(pairs))
	unique := make([]model.QAPair, 0, len(pairs))
	for _, pair := range pairs {
		question := strings.ToLower(pair.Question)
		if _, ok := seen[question]; ok {
			continue
		}
		seen[question] = struct{}{}
		unique = append(unique, pair)
	}

	return unique
}
