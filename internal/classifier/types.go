package classifier

// Annotation is the structured emotion verdict returned by the classifier.
// The field names mirror the wire format requested from the model.
type Annotation struct {
	// PrimaryEmotion is the dominant emotion label (joy, sadness, anger,
	// fear, surprise, disgust, neutral).
	PrimaryEmotion string `json:"primary_emotion"`
	// SecondaryEmotions lists additional emotion labels in order of weight.
	SecondaryEmotions []string `json:"secondary_emotions"`
	// Intensity is the emotion intensity on a 0-10 scale.
	Intensity float64 `json:"intensity"`
	// Keywords are the emotional keywords found in the text.
	Keywords []string `json:"keywords"`
	// Sentiment is positive, negative, or neutral.
	Sentiment string `json:"sentiment"`
	// Explanation is the classifier's free-text reasoning.
	Explanation string `json:"explanation"`
}

// chatMessage is a single message in a chat-completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat-completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the subset of the chat-completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
