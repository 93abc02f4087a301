package server

import (
	"encoding/json"
	"net/http"

	"github.com/datum-labs/rdapkit"
)

const rdapContentType = "application/rdap+json"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", rdapContentType)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeFound(w http.ResponseWriter, obj rdapkit.Object) {
	writeJSON(w, http.StatusOK, obj)
}

func writeRedirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusFound, &rdapkit.ErrorResponse{
		ErrorCode:       302,
		Title:           "Redirect",
		RDAPConformance: []string{"rdap_level_0"},
	})
}

func writeError(w http.ResponseWriter, code int, title string) {
	writeJSON(w, code, &rdapkit.ErrorResponse{
		ErrorCode:       code,
		Title:           title,
		RDAPConformance: []string{"rdap_level_0"},
	})
}
