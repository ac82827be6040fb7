package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"golox/errors"
	"golox/loader"
	"golox/scanner"
)

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// TokenRecord is the wire representation of one token.
type TokenRecord struct {
	Type    string `json:"type"`
	Line    int    `json:"line"`
	Lexeme  string `json:"lexeme"`
	Literal string `json:"literal,omitempty"`
}

type SourceResponse struct {
	Filepath    string              `json:"filepath"`
	Source      string              `json:"source"`
	Diagnostics []errors.Diagnostic `json:"diagnostics"`
}

type ScanResponse struct {
	Tokens      []TokenRecord       `json:"tokens"`
	Diagnostics []errors.Diagnostic `json:"diagnostics"`
}

// tokenRecords converts a scan result to its wire representation.
// The EOF token is included; clients filter it out if unwanted.
func tokenRecords(tokens []scanner.Token, source []byte) []TokenRecord {
	records := make([]TokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		rec := TokenRecord{
			Type:   tok.Type.String(),
			Line:   tok.Line,
			Lexeme: tok.Lexeme(source),
		}
		switch v := tok.Literal.(type) {
		case float64:
			rec.Literal = strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			rec.Literal = v
		}
		records = append(records, rec)
	}
	return records
}

// handleGetSource handles GET requests to /api/source.
// Returns the served file's content and its diagnostics as JSON.
func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	response := &SourceResponse{
		Filepath:    s.result.Filename,
		Source:      string(s.result.Source),
		Diagnostics: errors.Diagnostics(s.result.Errors),
	}
	s.mu.RUnlock()

	writeJSONResponse(w, response)
}

// handleGetTokens handles GET requests to /api/tokens.
// Returns the served file's token stream as JSON.
func (s *Server) handleGetTokens(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	response := &ScanResponse{
		Tokens:      tokenRecords(s.result.Tokens, s.result.Source),
		Diagnostics: errors.Diagnostics(s.result.Errors),
	}
	s.mu.RUnlock()

	writeJSONResponse(w, response)
}

// handleScan handles POST requests to /api/scan.
// Scans the request body as ad-hoc Lox source; nothing is persisted.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Source string `json:"source"`
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	if err := json.Unmarshal(body, &request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	source := []byte(request.Source)
	result, err := loader.New().LoadBytes(r.Context(), "<request>", source)
	if err != nil {
		http.Error(w, "Failed to scan source", http.StatusInternalServerError)
		return
	}

	writeJSONResponse(w, &ScanResponse{
		Tokens:      tokenRecords(result.Tokens, result.Source),
		Diagnostics: errors.Diagnostics(result.Errors),
	})
}
