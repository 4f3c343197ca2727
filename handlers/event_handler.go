package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"omnicassion/models"
	"omnicassion/repository"
	"omnicassion/utils"
)

type EventHandler struct {
	Repo repository.EventRepository
}

func (h *EventHandler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	var rec models.EventRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.EventID == "" {
		rec.EventID = utils.NewEventID()
	}

	stored, err := h.Repo.Upsert(&rec)
	if err != nil {
		log.Printf("save event %s failed: %v", rec.EventID, err)
		http.Error(w, "failed to save event", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(stored)
}

func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastUpdated.After(list[j].LastUpdated)
	})

	if list == nil {
		list = []*models.EventRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *EventHandler) GetEventByKey(w http.ResponseWriter, r *http.Request, key string) {
	evt, err := h.Repo.GetByKey(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if evt == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(evt)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing event id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		http.Error(w, "failed to delete event: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"message":"Event deleted successfully"}`))
}
