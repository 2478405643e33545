//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	emotioncipher "github.com/muhammadnavas/emotioncipher-go"
)

var (
	apiKey  string
	baseURL string
	model   string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("CLASSIFIER_API_KEY")
	baseURL = os.Getenv("CLASSIFIER_URL")
	model = os.Getenv("CLASSIFIER_MODEL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: CLASSIFIER_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running classifier integration tests...\n")

	os.Exit(m.Run())
}

func newSession(t *testing.T) *emotioncipher.Session {
	t.Helper()

	opts := []emotioncipher.Option{
		emotioncipher.WithClassifier(apiKey),
		emotioncipher.WithClassifierTimeout(60 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, emotioncipher.WithClassifierBaseURL(baseURL))
	}
	if model != "" {
		opts = append(opts, emotioncipher.WithClassifierModel(model))
	}

	session, err := emotioncipher.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return session
}

func TestIntegration_ProcessMessageWithAnnotation(t *testing.T) {
	session := newSession(t)
	ctx := context.Background()

	result, err := session.ProcessMessage(ctx, "I am absolutely thrilled about the launch!")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if !result.Success {
		t.Error("result not marked successful")
	}
	if result.Ciphertext == "" {
		t.Error("no ciphertext produced")
	}
	if result.Annotation == nil {
		t.Fatal("no annotation from live classifier")
	}

	t.Logf("Primary emotion: %s (intensity %.1f, sentiment %s)",
		result.Annotation.PrimaryEmotion,
		result.Annotation.Intensity,
		result.Annotation.Sentiment)

	if result.Annotation.PrimaryEmotion == "" {
		t.Error("annotation has no primary emotion")
	}
	if result.Annotation.Intensity < 0 || result.Annotation.Intensity > 10 {
		t.Errorf("intensity %v outside 0-10", result.Annotation.Intensity)
	}

	recovered, err := session.DecryptMessage(ctx, result.Ciphertext, emotioncipher.WithAnnotation(false))
	if err != nil {
		t.Fatalf("DecryptMessage() error = %v", err)
	}
	if recovered.Plaintext != result.OriginalText {
		t.Errorf("Plaintext = %q, want %q", recovered.Plaintext, result.OriginalText)
	}
}
