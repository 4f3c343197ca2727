package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"omnicassion/models"
	"omnicassion/pdf"
	"omnicassion/repository"
	"omnicassion/utils"
)

const invoicePrefix = "OMNI"

type InvoiceHandler struct {
	Repo   repository.InvoiceRepository
	PDFDir string
}

// SaveInvoice upserts by invoice number. A record without a number is
// a first save: the number is generated here and returned with the
// stored record.
func (h *InvoiceHandler) SaveInvoice(w http.ResponseWriter, r *http.Request) {
	var rec models.InvoiceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.InvoiceNumber == "" {
		rec.InvoiceNumber = utils.NewInvoiceNumber(invoicePrefix)
	}

	stored, err := h.Repo.Upsert(&rec)
	if err != nil {
		log.Printf("save invoice %s failed: %v", rec.InvoiceNumber, err)
		http.Error(w, "failed to save invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(stored)
}

// GetAllInvoices lists records, most recently updated first. The
// store returns them unsorted; ordering and kind filtering live here.
func (h *InvoiceHandler) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if kind := r.URL.Query().Get("kind"); kind != "" {
		filtered := list[:0]
		for _, inv := range list {
			if inv.Kind == kind {
				filtered = append(filtered, inv)
			}
		}
		list = filtered
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastUpdated.After(list[j].LastUpdated)
	})

	if list == nil {
		list = []*models.InvoiceRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetInvoiceByKey serves one record; the key is the rest of the URL
// path and contains slashes.
func (h *InvoiceHandler) GetInvoiceByKey(w http.ResponseWriter, r *http.Request, key string) {
	inv, err := h.Repo.GetByKey(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if inv == nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(inv)
}

// DeleteInvoice removes the record and, best-effort, any rendered
// artifact for it (local file and R2 object).
func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		http.Error(w, "missing invoice number", http.StatusBadRequest)
		return
	}

	// The artifact name needs the document kind, so look the record
	// up before it goes.
	rec, err := h.Repo.GetByKey(number)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Delete(number); err != nil {
		http.Error(w, "failed to delete invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if rec != nil {
		h.cleanupArtifact(rec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Invoice deleted successfully"}`))
}

func (h *InvoiceHandler) cleanupArtifact(rec *models.InvoiceRecord) {
	filename := pdf.FileName(rec.Kind, rec.InvoiceNumber)

	dir := h.PDFDir
	if dir == "" {
		dir = "./pdfs"
	}
	if err := os.Remove(filepath.Join(dir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("delete artifact %s failed: %v", filename, err)
	}

	if utils.R2Configured() {
		if err := utils.DeleteFromR2(filename); err != nil {
			log.Printf("R2 delete of %s failed: %v", filename, err)
		}
	}
}
