package emotioncipher

import "time"

// Sentiment is the overall polarity of a classified text.
type Sentiment string

// Sentiment values reported by the classifier.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Annotation is the emotion verdict attached to a cipher operation. It is a
// pass-through value from the external classifier: the cipher core neither
// interprets nor validates it beyond presence.
type Annotation struct {
	// PrimaryEmotion is the dominant emotion label.
	PrimaryEmotion string `json:"primary_emotion"`
	// SecondaryEmotions lists additional labels in order of weight.
	SecondaryEmotions []string `json:"secondary_emotions,omitempty"`
	// Intensity is the emotion intensity on a 0-10 scale.
	Intensity float64 `json:"intensity"`
	// Keywords are the emotional keywords found in the text.
	Keywords []string `json:"keywords,omitempty"`
	// Sentiment is positive, negative, or neutral.
	Sentiment Sentiment `json:"sentiment"`
	// Explanation is the classifier's free-text reasoning.
	Explanation string `json:"explanation,omitempty"`
}

// ErrorKind is a stable tag identifying the failure category of a cipher
// operation. Callers branch on the kind instead of parsing error text.
type ErrorKind string

// Error kinds populated on failed results.
const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindKeyGeneration   ErrorKind = "key_generation"
	ErrorKindKeyFormat       ErrorKind = "key_format"
	ErrorKindKeyMissing      ErrorKind = "key_missing"
	ErrorKindMessageTooLarge ErrorKind = "message_too_large"
	ErrorKindDecryption      ErrorKind = "decryption_failed"
)

// Result is the outcome of a single encrypt or decrypt operation.
//
// Success implies the payload field for the operation's direction is set
// (Ciphertext for encrypt, Plaintext for decrypt); failure implies ErrorKind
// is set and the payload is empty.
type Result struct {
	// OriginalText is the submitted plaintext. Present on the encrypt side
	// only; decrypt results never echo it unless the caller logs it.
	OriginalText string `json:"original_text,omitempty"`
	// Plaintext is the recovered message on the decrypt side.
	Plaintext string `json:"plaintext,omitempty"`
	// Ciphertext is the base64-encoded encrypted message.
	Ciphertext string `json:"ciphertext,omitempty"`
	// Timestamp is when the operation ran, UTC.
	Timestamp time.Time `json:"timestamp"`
	// Success reports whether the cipher operation completed.
	Success bool `json:"success"`
	// ErrorKind tags the failure category when Success is false.
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	// Annotation is the classifier verdict, when one was requested and the
	// classifier answered. Never required for Success.
	Annotation *Annotation `json:"annotation,omitempty"`
}

// Status is an aggregate snapshot of a session.
type Status struct {
	// KeysReady reports whether a usable key half is loaded.
	KeysReady bool `json:"keys_ready"`
	// ClassifierAvailable reports whether a classifier is configured.
	ClassifierAvailable bool `json:"classifier_available"`
	// Algorithm names the active cipher configuration.
	Algorithm string `json:"algorithm"`
	// Suite is the canonical name of the padding and hash suite.
	Suite string `json:"suite"`
	// TotalOperations counts every attempted operation, including failures.
	TotalOperations int `json:"total_operations"`
	// SuccessfulOperations counts operations that completed.
	SuccessfulOperations int `json:"successful_operations"`
}
