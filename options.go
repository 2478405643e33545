package emotioncipher

import (
	"net/http"
	"time"

	"github.com/muhammadnavas/emotioncipher-go/internal/classifier"
)

const defaultClassifierTimeout = 30 * time.Second

// sessionConfig holds configuration for a session.
type sessionConfig struct {
	keyBits           int
	passphrase        string
	storage           KeyStorage
	signReports       bool
	classifierKey     string
	classifierOpts    []classifier.Option
	classifierHTTP    *http.Client
	classifierTimeout time.Duration
	onAnnotationError func(error)
}

// processConfig holds configuration for a single cipher operation.
type processConfig struct {
	annotate bool
}

// Option configures a session.
type Option func(*sessionConfig)

// ProcessOption configures a single ProcessMessage or DecryptMessage call.
type ProcessOption func(*processConfig)

// WithKeyBits sets the RSA modulus size used when the session generates a
// key pair. Default: 2048. Sizes below 2048 are rejected at generation time.
func WithKeyBits(bits int) Option {
	return func(c *sessionConfig) {
		c.keyBits = bits
	}
}

// WithKeyStorage sets the persistence collaborator for EnsureKeys. Without
// one, the session keeps its generated keys in memory only.
func WithKeyStorage(storage KeyStorage) Option {
	return func(c *sessionConfig) {
		c.storage = storage
	}
}

// WithKeyPassphrase sets the passphrase under which the private key half is
// persisted and loaded. The baseline (empty passphrase) persists the key
// unencrypted.
func WithKeyPassphrase(passphrase string) Option {
	return func(c *sessionConfig) {
		c.passphrase = passphrase
	}
}

// WithClassifier enables emotion annotation using the given classifier
// service API key.
func WithClassifier(apiKey string) Option {
	return func(c *sessionConfig) {
		c.classifierKey = apiKey
	}
}

// WithClassifierBaseURL sets the classifier service base URL.
func WithClassifierBaseURL(url string) Option {
	return func(c *sessionConfig) {
		c.classifierOpts = append(c.classifierOpts, classifier.WithBaseURL(url))
	}
}

// WithClassifierModel sets the model used for emotion classification.
func WithClassifierModel(model string) Option {
	return func(c *sessionConfig) {
		c.classifierOpts = append(c.classifierOpts, classifier.WithModel(model))
	}
}

// WithClassifierRetries sets the retry count for classifier calls.
func WithClassifierRetries(retries int) Option {
	return func(c *sessionConfig) {
		c.classifierOpts = append(c.classifierOpts, classifier.WithRetries(retries))
	}
}

// WithClassifierHTTPClient sets a custom HTTP client for classifier calls.
func WithClassifierHTTPClient(client *http.Client) Option {
	return func(c *sessionConfig) {
		c.classifierHTTP = client
	}
}

// WithClassifierTimeout bounds each annotation attempt independently of the
// cipher operation. A classifier timeout drops the annotation, never the
// operation. Default: 30 seconds.
func WithClassifierTimeout(timeout time.Duration) Option {
	return func(c *sessionConfig) {
		c.classifierTimeout = timeout
	}
}

// WithAnnotationErrorFunc registers a callback for classifier failures that
// were swallowed (annotation dropped, operation continued). The callback
// receives a *ClassifierError.
func WithAnnotationErrorFunc(fn func(error)) Option {
	return func(c *sessionConfig) {
		c.onAnnotationError = fn
	}
}

// WithReportSigning makes the session sign exported reports with a fresh
// Ed25519 key so the audit trail is tamper-evident. Verify with
// VerifyReport.
func WithReportSigning() Option {
	return func(c *sessionConfig) {
		c.signReports = true
	}
}

// WithAnnotation enables or disables emotion annotation for a single call.
// Annotation defaults to on whenever a classifier is configured.
func WithAnnotation(enabled bool) ProcessOption {
	return func(c *processConfig) {
		c.annotate = enabled
	}
}
