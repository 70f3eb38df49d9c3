package services

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"askroom/internal/config"
)

// Generator calls the external text-generation endpoint (Ollama-style
// streaming API) to produce the automatic answer for a new question.
// Generate never returns an error: every failure mode degrades into a
// descriptive placeholder so question creation is never blocked.
type Generator struct {
	client  *http.Client
	baseURL string
	model   string
}

func NewGenerator(cfg config.Config) *Generator {
	return &Generator{
		client:  &http.Client{Timeout: time.Duration(cfg.AITimeout) * time.Second},
		baseURL: cfg.AIBaseURL,
		model:   cfg.AIModel,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// streamChunk covers the field names different generation backends use for
// the text piece. Checked in order: response, text, content.
type streamChunk struct {
	Response string `json:"response"`
	Text     string `json:"text"`
	Content  string `json:"content"`
}

func (ch streamChunk) piece() string {
	if ch.Response != "" {
		return ch.Response
	}
	if ch.Text != "" {
		return ch.Text
	}
	return ch.Content
}

// Generate builds the prompt from title and body and accumulates the
// streamed fragments into one answer string.
func (g *Generator) Generate(title, body string) string {
	prompt := fmt.Sprintf("Q: %s\n%s\n\nAnswer:", title, body)

	payload, _ := json.Marshal(generateRequest{Model: g.model, Prompt: prompt})
	resp, err := g.client.Post(g.baseURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("AI request failed: %v", err)
		return fmt.Sprintf(" (AI error: %v)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("AI endpoint returned status %d", resp.StatusCode)
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		if len(text) > 0 {
			return " (AI unavailable: " + string(text) + ")"
		}
		return " (AI unavailable)"
	}

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var chunk streamChunk
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			// Not JSON: append the raw line
			full.WriteString(line)
			continue
		}
		full.WriteString(chunk.piece())
	}
	if err := scanner.Err(); err != nil {
		log.Printf("AI stream read failed: %v", err)
	}

	text := strings.TrimSpace(full.String())
	if text == "" {
		return " (AI returned empty)"
	}
	return " " + text
}
