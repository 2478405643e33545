package emotioncipher

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExportReportUnsigned(t *testing.T) {
	session := readySession(t)
	ctx := context.Background()

	if _, err := session.ProcessMessage(ctx, "first"); err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if _, err := session.ProcessMessage(ctx, "second"); err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	report, err := session.ExportReport()
	if err != nil {
		t.Fatalf("ExportReport() error = %v", err)
	}
	if report.ExportInfo.Version != ReportVersion {
		t.Errorf("Version = %d, want %d", report.ExportInfo.Version, ReportVersion)
	}
	if report.ExportInfo.Timestamp.IsZero() {
		t.Error("export timestamp is zero")
	}
	if len(report.History) != 2 {
		t.Errorf("history length = %d, want 2", len(report.History))
	}
	if report.SystemStatus.TotalOperations != 2 {
		t.Errorf("TotalOperations = %d, want 2", report.SystemStatus.TotalOperations)
	}
	if report.Signature != "" || report.SignerPublicKey != "" {
		t.Error("unsigned report carries signature fields")
	}

	if err := VerifyReport(report); !errors.Is(err, ErrReportSignature) {
		t.Errorf("VerifyReport(unsigned) error = %v, want ErrReportSignature", err)
	}
}

func TestExportReportSignedAndVerified(t *testing.T) {
	session := readySession(t, WithReportSigning())
	ctx := context.Background()

	if _, err := session.ProcessMessage(ctx, "audited"); err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	report, err := session.ExportReport()
	if err != nil {
		t.Fatalf("ExportReport() error = %v", err)
	}
	if report.Signature == "" || report.SignerPublicKey == "" {
		t.Fatal("signing session produced an unsigned report")
	}

	if err := VerifyReport(report); err != nil {
		t.Fatalf("VerifyReport() error = %v", err)
	}

	t.Run("tampered history", func(t *testing.T) {
		tampered := *report
		tampered.History = append([]AuditRecord(nil), report.History...)
		tampered.History[0].Success = false

		if err := VerifyReport(&tampered); !errors.Is(err, ErrReportSignature) {
			t.Errorf("VerifyReport(tampered) error = %v, want ErrReportSignature", err)
		}
	})

	t.Run("tampered status", func(t *testing.T) {
		tampered := *report
		tampered.SystemStatus.TotalOperations = 99

		if err := VerifyReport(&tampered); !errors.Is(err, ErrReportSignature) {
			t.Errorf("VerifyReport(tampered) error = %v, want ErrReportSignature", err)
		}
	})

	t.Run("garbage signature", func(t *testing.T) {
		tampered := *report
		tampered.Signature = "not base64!"

		if err := VerifyReport(&tampered); !errors.Is(err, ErrReportSignature) {
			t.Errorf("VerifyReport(garbage sig) error = %v, want ErrReportSignature", err)
		}
	})
}

func TestExportReportToFile(t *testing.T) {
	session := readySession(t, WithReportSigning())
	ctx := context.Background()

	if _, err := session.ProcessMessage(ctx, "persist me"); err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := session.ExportReportToFile(path); err != nil {
		t.Fatalf("ExportReportToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if report.ExportInfo.Version != ReportVersion {
		t.Errorf("Version = %d, want %d", report.ExportInfo.Version, ReportVersion)
	}
	if len(report.History) != 1 {
		t.Errorf("history length = %d, want 1", len(report.History))
	}

	// The signature must survive the file round trip.
	if err := VerifyReport(&report); err != nil {
		t.Errorf("VerifyReport(after round trip) error = %v", err)
	}
}

func TestVerifyReportNil(t *testing.T) {
	if err := VerifyReport(nil); !errors.Is(err, ErrReportSignature) {
		t.Errorf("VerifyReport(nil) error = %v, want ErrReportSignature", err)
	}
}
