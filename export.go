package emotioncipher

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cloudflare/circl/sign/ed25519"
)

// ReportVersion is the current export format version.
const ReportVersion = 1

// ExportInfo identifies when and in what format a report was produced.
type ExportInfo struct {
	// Timestamp is the export time (ISO 8601).
	Timestamp time.Time `json:"timestamp"`
	// Version is the report format version. MUST be 1.
	Version int `json:"version"`
}

// Report is the exported audit artifact: a self-describing JSON document
// with the session status and the full ordered operation history.
//
// For sessions created with WithReportSigning, the report carries an Ed25519
// signature over its canonical unsigned form; use VerifyReport to check it.
type Report struct {
	// ExportInfo is the export metadata.
	ExportInfo ExportInfo `json:"export_info"`
	// SystemStatus is the session status at export time.
	SystemStatus Status `json:"system_status"`
	// History is the complete audit trail in chronological order.
	History []AuditRecord `json:"cipher_history"`
	// Signature is the base64 Ed25519 signature. Only set for signing sessions.
	Signature string `json:"signature,omitempty"`
	// SignerPublicKey is the base64 Ed25519 public key of the signer.
	// Only set for signing sessions.
	SignerPublicKey string `json:"signer_public_key,omitempty"`
}

// ExportReport builds the audit report for this session. Signing sessions
// get a signature attached; others produce an unsigned report.
func (s *Session) ExportReport() (*Report, error) {
	report := &Report{
		ExportInfo: ExportInfo{
			Timestamp: time.Now().UTC(),
			Version:   ReportVersion,
		},
		SystemStatus: s.Status(),
		History:      s.History(),
	}

	if s.signPrivate == nil {
		return report, nil
	}

	payload, err := canonicalReportBytes(report)
	if err != nil {
		return nil, err
	}

	report.Signature = base64.StdEncoding.EncodeToString(ed25519.Sign(s.signPrivate, payload))
	report.SignerPublicKey = base64.StdEncoding.EncodeToString(s.signPublic)

	return report, nil
}

// ExportReportToFile writes the report as indented JSON with secure
// permissions (0600).
func (s *Session) ExportReportToFile(path string) error {
	report, err := s.ExportReport()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// VerifyReport checks a report's Ed25519 signature against its canonical
// unsigned form. Unsigned or tampered reports fail with ErrReportSignature.
func VerifyReport(report *Report) error {
	if report == nil || report.Signature == "" || report.SignerPublicKey == "" {
		return fmt.Errorf("%w: report is not signed", ErrReportSignature)
	}

	publicKey, err := base64.StdEncoding.DecodeString(report.SignerPublicKey)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: invalid signer key", ErrReportSignature)
	}

	signature, err := base64.StdEncoding.DecodeString(report.Signature)
	if err != nil {
		return fmt.Errorf("%w: invalid signature encoding", ErrReportSignature)
	}

	payload, err := canonicalReportBytes(report)
	if err != nil {
		return err
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), payload, signature) {
		return ErrReportSignature
	}

	return nil
}

// canonicalReportBytes marshals the report with the signature fields
// cleared, so signer and verifier agree on the signed payload.
func canonicalReportBytes(report *Report) ([]byte, error) {
	unsigned := *report
	unsigned.Signature = ""
	unsigned.SignerPublicKey = ""

	payload, err := json.Marshal(&unsigned)
	if err != nil {
		return nil, fmt.Errorf("marshal report for signing: %w", err)
	}
	return payload, nil
}
