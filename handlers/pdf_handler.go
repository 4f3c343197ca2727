package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"omnicassion/layout"
	"omnicassion/pdf"
	"omnicassion/repository"
	"omnicassion/utils"
)

type PDFHandler struct {
	Invoices  repository.InvoiceRepository
	Profiles  repository.ProfileRepository
	SavePath  string
	AssetsDir string
}

// InvoicePDF renders the invoice document: record + profile in, plan
// built, plan painted, artifact saved (and uploaded when R2 is
// configured).
func (h *PDFHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		http.Error(w, "missing invoice number", http.StatusBadRequest)
		return
	}

	rec, err := h.Invoices.GetByKey(number)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	profile, err := h.Profiles.GetProfile()
	if err != nil {
		// Render with fallbacks rather than failing the document.
		log.Printf("profile unavailable for %s: %v", number, err)
	}

	plan := layout.BuildPlan(rec, profile, h.readAsset("logo.png"), h.readAsset("qr.png"), layout.A4())

	pdfBytes, err := pdf.Render(plan)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := pdf.FileName(rec.Kind, rec.InvoiceNumber)
	if err := os.WriteFile(filepath.Join(saveDir, filename), pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fileURL := ""
	if utils.R2Configured() {
		fileURL, err = utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			// Keep the local artifact; the upload is best-effort.
			log.Printf("R2 upload of %s failed: %v", filename, err)
			fileURL = ""
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if fileURL != "" {
		fmt.Fprintf(w, `{"success":true,"file":%q,"url":%q}`, filename, fileURL)
		return
	}
	fmt.Fprintf(w, `{"success":true,"file":%q}`, filename)
}

// readAsset loads an optional raster from the assets directory,
// returning nil when it is absent. The renderer degrades nil slots to
// placeholders.
func (h *PDFHandler) readAsset(name string) []byte {
	if h.AssetsDir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(h.AssetsDir, name))
	if err != nil {
		return nil
	}
	return data
}
