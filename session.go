package emotioncipher

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/muhammadnavas/emotioncipher-go/internal/classifier"
	"github.com/muhammadnavas/emotioncipher-go/internal/rsacrypto"
)

// Session is the orchestration layer of the emotion cipher: it owns one
// KeyStore and one audit trail, drives the encrypt/decrypt pipeline, and
// attaches best-effort emotion annotations from the external classifier.
//
// A session starts uninitialized and becomes ready on the first operation
// that needs keys (or an explicit EnsureKeys call). There is no closed
// state; a session is valid for the life of the process. Independent
// sessions share nothing.
type Session struct {
	keys              *KeyStore
	storage           KeyStorage
	keyBits           int
	passphrase        string
	classifier        *classifier.Client
	classifierTimeout time.Duration
	onAnnotationError func(error)
	audit             auditLog

	// ensureMu serializes the uninitialized -> ready transition so
	// concurrent first calls agree on one key pair.
	ensureMu sync.Mutex

	signPublic  ed25519.PublicKey
	signPrivate ed25519.PrivateKey
}

// New creates a session.
func New(opts ...Option) (*Session, error) {
	cfg := &sessionConfig{
		keyBits:           DefaultKeyBits,
		classifierTimeout: defaultClassifierTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	s := &Session{
		keys:              NewKeyStore(),
		storage:           cfg.storage,
		keyBits:           cfg.keyBits,
		passphrase:        cfg.passphrase,
		classifierTimeout: cfg.classifierTimeout,
		onAnnotationError: cfg.onAnnotationError,
	}

	if cfg.classifierKey != "" {
		client, err := classifier.New(cfg.classifierKey, cfg.classifierOpts...)
		if err != nil {
			return nil, fmt.Errorf("configure classifier: %w", err)
		}
		if cfg.classifierHTTP != nil {
			client.SetHTTPClient(cfg.classifierHTTP)
		}
		s.classifier = client
	}

	if cfg.signReports {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate report signing key: %w", err)
		}
		s.signPublic = pub
		s.signPrivate = priv
	}

	return s, nil
}

// KeyStore returns the session's key store, for callers that need direct
// access to serialization or capability checks.
func (s *Session) KeyStore() *KeyStore {
	return s.keys
}

// ClassifierAvailable reports whether a classifier is configured.
func (s *Session) ClassifierAvailable() bool {
	return s.classifier != nil
}

// EnsureKeys transitions the session to ready. With a KeyStorage configured
// it loads the persisted pair, or generates and persists a fresh one when
// nothing is stored yet; without storage it generates an in-memory pair.
// Idempotent: once ready, calls are no-ops.
//
// Generation and persistence are separate, ordered steps: the pair that ends
// up on disk is exactly the pair held in memory. Malformed persisted keys
// surface as a KeyFormatError; the session never overwrites stored key
// material on its own.
func (s *Session) EnsureKeys(ctx context.Context) error {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()

	if s.keys.IsReady() {
		return nil
	}

	if s.storage == nil {
		return s.keys.Generate(s.keyBits)
	}

	publicPEM, privatePEM, err := s.storage.Load(ctx)
	switch {
	case err == nil:
		return s.keys.LoadWithPassphrase(publicPEM, privatePEM, s.passphrase)
	case errors.Is(err, ErrNoStoredKeys):
		// fall through to generation
	default:
		return fmt.Errorf("load keys: %w", err)
	}

	if err := s.keys.Generate(s.keyBits); err != nil {
		return err
	}

	publicPEM, privatePEM, err = s.keys.SerializeWithPassphrase(s.passphrase)
	if err != nil {
		return err
	}

	if err := s.storage.Save(ctx, publicPEM, privatePEM); err != nil {
		return fmt.Errorf("persist keys: %w", err)
	}

	return nil
}

// ProcessMessage encrypts text under the session's public key, attaches a
// best-effort emotion annotation when a classifier is configured, appends an
// audit record, and returns the combined result.
//
// Classifier failures never fail the operation: the annotation is dropped
// and the error (wrapped in *ClassifierError) goes to the annotation error
// callback, if any. Cipher failures are terminal for this call only; the
// returned Result carries the stable ErrorKind and the audit trail records
// the attempt as failed.
func (s *Session) ProcessMessage(ctx context.Context, text string, opts ...ProcessOption) (*Result, error) {
	cfg := &processConfig{annotate: true}
	for _, opt := range opts {
		opt(cfg)
	}

	result := &Result{
		OriginalText: text,
		Timestamp:    time.Now().UTC(),
	}

	if err := s.EnsureKeys(ctx); err != nil {
		return s.failOperation(result, OperationEncrypt, len(text), 0, err)
	}

	annotation := s.annotate(ctx, text, cfg)

	ciphertext, err := rsacrypto.Encrypt([]byte(text), s.keys.publicKey())
	if err != nil {
		return s.failOperation(result, OperationEncrypt, len(text), 0, s.wrapEncryptError(err, len(text)))
	}

	result.Ciphertext = ciphertext
	result.Annotation = annotation
	result.Success = true

	s.audit.append(AuditRecord{
		Timestamp:        result.Timestamp,
		Operation:        OperationEncrypt,
		PlaintextLength:  len(text),
		CiphertextLength: len(ciphertext),
		HadAnnotation:    annotation != nil,
		Success:          true,
	})

	return result, nil
}

// DecryptMessage reverses ProcessMessage: it decodes and decrypts the
// base64 ciphertext under the session's private key, optionally re-submits
// the recovered plaintext for annotation, appends an audit record, and
// returns the result. Failure semantics match ProcessMessage.
func (s *Session) DecryptMessage(ctx context.Context, ciphertext string, opts ...ProcessOption) (*Result, error) {
	cfg := &processConfig{annotate: true}
	for _, opt := range opts {
		opt(cfg)
	}

	result := &Result{
		Ciphertext: ciphertext,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.EnsureKeys(ctx); err != nil {
		return s.failOperation(result, OperationDecrypt, 0, len(ciphertext), err)
	}

	plaintext, err := rsacrypto.Decrypt(ciphertext, s.keys.privateKey())
	if err != nil {
		return s.failOperation(result, OperationDecrypt, 0, len(ciphertext), s.wrapDecryptError(err))
	}

	result.Plaintext = string(plaintext)
	result.Annotation = s.annotate(ctx, result.Plaintext, cfg)
	result.Success = true

	s.audit.append(AuditRecord{
		Timestamp:        result.Timestamp,
		Operation:        OperationDecrypt,
		PlaintextLength:  len(plaintext),
		CiphertextLength: len(ciphertext),
		HadAnnotation:    result.Annotation != nil,
		Success:          true,
	})

	return result, nil
}

// AnalyzeEmotion submits text directly to the classifier without any cipher
// operation, and without touching keys or the audit trail. Unlike the
// annotation attached by ProcessMessage, failures here are returned to the
// caller. Sessions without a classifier fail with ErrClassifierUnavailable.
func (s *Session) AnalyzeEmotion(ctx context.Context, text string) (*Annotation, error) {
	if s.classifier == nil {
		return nil, ErrClassifierUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.classifierTimeout)
	defer cancel()

	verdict, err := s.classifier.AnalyzeEmotion(ctx, text)
	if err != nil {
		return nil, &ClassifierError{Err: err}
	}

	return &Annotation{
		PrimaryEmotion:    verdict.PrimaryEmotion,
		SecondaryEmotions: verdict.SecondaryEmotions,
		Intensity:         verdict.Intensity,
		Keywords:          verdict.Keywords,
		Sentiment:         Sentiment(verdict.Sentiment),
		Explanation:       verdict.Explanation,
	}, nil
}

// Status returns an aggregate snapshot of the session. Pure read; never
// mutates state (an uninitialized session stays uninitialized).
func (s *Session) Status() Status {
	total, successful := s.audit.counts()
	return Status{
		KeysReady:            s.keys.IsReady(),
		ClassifierAvailable:  s.classifier != nil,
		Algorithm:            fmt.Sprintf("RSA-%d", s.keyBits),
		Suite:                rsacrypto.CipherSuite,
		TotalOperations:      total,
		SuccessfulOperations: successful,
	}
}

// History returns a copy of the session's audit trail in chronological
// order, including failed operations.
func (s *Session) History() []AuditRecord {
	return s.audit.snapshot()
}

// failOperation records a failed attempt in the audit trail and finalizes
// the result. The typed error is returned alongside the structured result so
// callers can branch either way.
func (s *Session) failOperation(result *Result, op Operation, plaintextLen, ciphertextLen int, err error) (*Result, error) {
	kind := kindForError(err)
	result.ErrorKind = kind

	s.audit.append(AuditRecord{
		Timestamp:        result.Timestamp,
		Operation:        op,
		PlaintextLength:  plaintextLen,
		CiphertextLength: ciphertextLen,
		Success:          false,
		ErrorKind:        kind,
	})

	return result, err
}

// annotate requests an emotion verdict for text. Best-effort: any failure
// returns nil after notifying the annotation error callback. The classifier
// call is bounded by its own timeout so a slow annotator cannot stall the
// cipher pipeline.
func (s *Session) annotate(ctx context.Context, text string, cfg *processConfig) *Annotation {
	if !cfg.annotate || s.classifier == nil {
		return nil
	}

	annotation, err := s.AnalyzeEmotion(ctx, text)
	if err != nil {
		if s.onAnnotationError != nil {
			s.onAnnotationError(err)
		}
		return nil
	}

	return annotation
}

func (s *Session) wrapEncryptError(err error, plaintextLen int) error {
	switch {
	case errors.Is(err, rsacrypto.ErrMessageTooLarge):
		return &MessageTooLargeError{Length: plaintextLen, Max: s.keys.Capacity()}
	case errors.Is(err, rsacrypto.ErrNoPublicKey):
		return ErrKeyMissing
	default:
		return err
	}
}

func (s *Session) wrapDecryptError(err error) error {
	switch {
	case errors.Is(err, rsacrypto.ErrNoPrivateKey):
		return ErrKeyMissing
	case errors.Is(err, rsacrypto.ErrDecryptionFailed):
		return &DecryptionError{}
	default:
		return err
	}
}
