package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert emotion analyst. Respond only with valid JSON."

const analysisPromptFormat = `Analyze the emotional content of the following text and provide:
1. Primary emotion (joy, sadness, anger, fear, surprise, disgust, neutral)
2. Secondary emotions (if any)
3. Emotion intensity (1-10 scale)
4. Emotional keywords found in the text
5. Sentiment (positive, negative, neutral)

Text to analyze: %q

Respond in JSON format with keys: primary_emotion, secondary_emotions, intensity, keywords, sentiment, explanation`

// AnalyzeEmotion submits text to the classifier and returns its structured
// verdict. Transport and API failures are returned as errors; a reply that
// is not parseable JSON degrades to a fallback annotation instead, since a
// malformed verdict is still a verdict.
func (c *Client) AnalyzeEmotion(ctx context.Context, text string) (*Annotation, error) {
	req := &chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(analysisPromptFormat, text)},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	}

	var resp chatResponse
	if err := c.do(ctx, "POST", "/chat/completions", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	return parseAnnotation(resp.Choices[0].Message.Content), nil
}

// parseAnnotation extracts the JSON verdict from the model reply. Models
// sometimes wrap JSON in markdown fences; those are stripped first. A reply
// that still isn't valid JSON becomes a low-confidence fallback annotation
// carrying the raw text as its explanation.
func parseAnnotation(content string) *Annotation {
	trimmed := stripFences(strings.TrimSpace(content))

	var ann Annotation
	if err := json.Unmarshal([]byte(trimmed), &ann); err != nil {
		return &Annotation{
			PrimaryEmotion:    "unknown",
			SecondaryEmotions: []string{},
			Intensity:         5,
			Keywords:          []string{},
			Sentiment:         "neutral",
			Explanation:       content,
		}
	}

	return &ann
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 && !strings.HasPrefix(s, "{") {
		// Drop the language tag line (e.g. "json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
