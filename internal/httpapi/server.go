// Package httpapi exposes train and predict as a JSON endpoint, gated by a
// shared access key. Ranking logic stays in the service; this layer only
// translates requests, errors and results.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"faqmatch/internal/domain"
)

type Server struct {
	matcher   domain.Matcher
	accessKey string
}

func New(matcher domain.Matcher, accessKey string) *Server {
	return &Server{matcher: matcher, accessKey: accessKey}
}

type request struct {
	Mode  string `json:"mode"`
	Query string `json:"query"`
	Key   string `json:"key"`
}

type matchPayload struct {
	Answer          string  `json:"answer"`
	Score           float64 `json:"score"`
	MatchedQuestion string  `json:"matchedQuestion"`
}

// Handler returns the route table for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	return mux
}

func (s *Server) isAuthorized(key string) bool {
	return s.accessKey != "" && key == s.accessKey
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.isAuthorized(req.Key) {
		writeError(w, http.StatusForbidden, "not executable")
		return
	}

	switch req.Mode {
	case "train":
		res, err := s.matcher.Train()
		if err != nil {
			log.Printf("train failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"mode":       "train",
			"documents":  res.Documents,
			"vocabulary": res.Vocabulary,
		})
	case "predict":
		res, err := s.matcher.Predict(req.Query)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrEmptyQuery) {
				status = http.StatusBadRequest
			}
			log.Printf("predict failed: %v", err)
			writeError(w, status, err.Error())
			return
		}
		matches := make([]matchPayload, 0, len(res.Matches))
		for _, m := range res.Matches {
			matches = append(matches, matchPayload{Answer: m.Answer, Score: m.Score, MatchedQuestion: m.Question})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"mode":    "predict",
			"query":   res.Query,
			"matches": matches,
		})
	default:
		writeError(w, http.StatusBadRequest, "mode must be \"train\" or \"predict\"")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}
