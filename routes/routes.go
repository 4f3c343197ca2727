package routes

import (
	"net/http"

	"omnicassion/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	invoiceHandler *handlers.InvoiceHandler,
	eventHandler *handlers.EventHandler,
	profileHandler *handlers.ProfileHandler,
	pdfHandler *handlers.PDFHandler,
) {
	http.Handle("/invoice/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.InvoicePDF))))

	// Invoice routes
	http.Handle("/invoice", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			invoiceHandler.SaveInvoice(w, r)
		case http.MethodGet:
			invoiceHandler.GetAllInvoices(w, r)
		case http.MethodDelete:
			invoiceHandler.DeleteInvoice(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Get invoice by natural key; the key itself contains slashes
	// (OMNI/26-01/099), so take the whole remaining path.
	http.Handle("/invoice/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[len("/invoice/"):]
		if key != "" {
			invoiceHandler.GetInvoiceByKey(w, r, key)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Event routes
	http.Handle("/event", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			eventHandler.SaveEvent(w, r)
		case http.MethodGet:
			eventHandler.GetAllEvents(w, r)
		case http.MethodDelete:
			eventHandler.DeleteEvent(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	http.Handle("/event/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[len("/event/"):]
		if key != "" {
			eventHandler.GetEventByKey(w, r, key)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Company profile routes
	http.Handle("/profile", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			profileHandler.SaveProfile(w, r)
		case http.MethodGet:
			profileHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
}
