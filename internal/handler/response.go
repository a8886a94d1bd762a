package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// dateLayout is the wire format for trading-day dates.
const dateLayout = "2006-01-02"

// WriteJSON writes a JSON response with the given status code and data.
// Sets Content-Type to application/json before writing the status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Write error intentionally ignored in response helper
}

// statusResponse is the status/message body used by the trade and
// cancel endpoints, for success and failure alike.
type statusResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// WriteSuccess writes a 200 success status body.
func WriteSuccess(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, statusResponse{Status: "success", Msg: msg})
}

// WriteFail writes a failure status body with the given HTTP status.
func WriteFail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, statusResponse{Status: "fail", Msg: msg})
}

// ParseJSON decodes the request body as JSON into v.
// It validates that the Content-Type header is application/json and
// returns an error for missing/incorrect content type or malformed JSON.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	return nil
}
