package window

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	body, err := json.Marshal(res)
	if err != nil {
		log.Printf("window calc encode: %v", err)
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(body, '\n'))
}

// WriteError answers a failed calculation: invalid dimensions are the
// client's fault, anything else is logged and reported as a server error.
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("window calc error: %v", err)
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}
