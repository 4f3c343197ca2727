package handlers

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"omnicassion/models"
	"omnicassion/pdf"
	"omnicassion/repository"
)

func TestDeleteInvoiceRemovesRecordAndArtifact(t *testing.T) {
	dataDir := t.TempDir()
	pdfDir := t.TempDir()

	repo := repository.NewFileInvoiceRepo(dataDir)
	rec := &models.InvoiceRecord{
		InvoiceNumber: "OMNI/26-01/050",
		Kind:          models.KindInvoice,
		Items:         []models.LineItem{{ID: 1, Service: "Decoration", Quantity: 1, Price: 500}},
	}
	if _, err := repo.Upsert(rec); err != nil {
		t.Fatal(err)
	}

	// A previously rendered artifact sits in the pdf directory.
	artifact := filepath.Join(pdfDir, pdf.FileName(rec.Kind, rec.InvoiceNumber))
	if err := os.WriteFile(artifact, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	h := &InvoiceHandler{Repo: repo, PDFDir: pdfDir}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/invoice?number=OMNI/26-01/050", nil)
	h.DeleteInvoice(w, r)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got, err := repo.GetByKey("OMNI/26-01/050"); err != nil || got != nil {
		t.Fatalf("record should be gone, got %+v, err %v", got, err)
	}
	if _, err := os.Stat(artifact); !os.IsNotExist(err) {
		t.Fatalf("rendered artifact should be removed, stat err %v", err)
	}
}

func TestDeleteInvoiceMissingKeyStillSucceeds(t *testing.T) {
	h := &InvoiceHandler{Repo: repository.NewFileInvoiceRepo(t.TempDir()), PDFDir: t.TempDir()}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/invoice?number=OMNI/26-01/404", nil)
	h.DeleteInvoice(w, r)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
