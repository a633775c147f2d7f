package report

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	window "Alucut/internal/calc/window"
)

type Handler struct {
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	sheet, ok := decodeSheet(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, sheet, h.now()); err != nil {
		log.Printf("cut list pdf: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cutlist.pdf\"")
	w.Write(buf.Bytes())
}

func (h *Handler) Spreadsheet(w http.ResponseWriter, r *http.Request) {
	sheet, ok := decodeSheet(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sheet); err != nil {
		log.Printf("cut list xlsx: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cutlist.xlsx\"")
	w.Write(buf.Bytes())
}

func decodeSheet(w http.ResponseWriter, r *http.Request) (Sheet, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Sheet{}, false
	}
	sheet, err := NewSheet(input)
	if err != nil {
		window.WriteError(w, err)
		return Sheet{}, false
	}
	return sheet, true
}
