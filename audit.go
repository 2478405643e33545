package emotioncipher

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Operation identifies the direction of a cipher operation.
type Operation string

// Operations recorded in the audit trail.
const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// AuditRecord is one entry in a session's append-only operation history.
// Records are never mutated after append; insertion order is chronological.
type AuditRecord struct {
	// ID uniquely identifies the operation.
	ID string `json:"id"`
	// Timestamp is when the operation ran, UTC.
	Timestamp time.Time `json:"timestamp"`
	// Operation is encrypt or decrypt.
	Operation Operation `json:"operation"`
	// PlaintextLength is the plaintext length in bytes (the input on
	// encrypt, the recovered output on decrypt; zero when decryption failed).
	PlaintextLength int `json:"plaintext_length"`
	// CiphertextLength is the length of the base64 ciphertext text.
	CiphertextLength int `json:"ciphertext_length"`
	// HadAnnotation reports whether a classifier verdict was attached.
	HadAnnotation bool `json:"had_annotation"`
	// Success reports whether the cipher operation completed.
	Success bool `json:"success"`
	// ErrorKind tags the failure category when Success is false.
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

// auditLog is the one piece of mutable shared state in a session. Appends
// are serialized so the record count always equals the operations attempted.
type auditLog struct {
	mu      sync.Mutex
	records []AuditRecord
}

func (l *auditLog) append(r AuditRecord) {
	r.ID = uuid.NewString()
	l.mu.Lock()
	l.records = append(l.records, r)
	l.mu.Unlock()
}

// snapshot returns a copy of the trail; the internal slice is never shared.
func (l *auditLog) snapshot() []AuditRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AuditRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *auditLog) counts() (total, successful int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.records {
		if r.Success {
			successful++
		}
	}
	return len(l.records), successful
}
