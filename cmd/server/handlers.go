package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jpoetry/jpoetry"
	"github.com/jpoetry/jpoetry/internal/config"
	"github.com/jpoetry/jpoetry/morph"
)

// ---- JSON types ---------------------------------------------------------

type textRequest struct {
	Text   string `json:"text"`
	Strict *bool  `json:"strict,omitempty"`
}

type syllablesResponse struct {
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
}

type spellResponse struct {
	Number string `json:"number"`
	Case   string `json:"case,omitempty"`
	Text   string `json:"text"`
}

type annotateResponse struct {
	Words       []jpoetry.WordInfo `json:"words"`
	Syllables   int                `json:"syllables"`
	Description string             `json:"description"`
}

type detectResponse struct {
	Poems []*jpoetry.Poem    `json:"poems"`
	Lines []jpoetry.LineInfo `json:"lines"`
}

type previewResponse struct {
	Genre       jpoetry.Genre `json:"genre"`
	Title       string        `json:"title"`
	Text        string        `json:"text"`
	Description string        `json:"description"`
	Issues      int           `json:"issues"`
}

type genresResponse struct {
	Genres []jpoetry.GenreInfo `json:"genres"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type server struct {
	detector *jpoetry.Detector
	cfg      *config.Config
	logger   *zap.Logger
}

func newServer(d *jpoetry.Detector, cfg *config.Config, logger *zap.Logger) *server {
	return &server{detector: d, cfg: cfg, logger: logger}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Encode error", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeDetectError maps analysis failures to 422 and everything else to 500.
func (s *server) writeDetectError(w http.ResponseWriter, err error) {
	if errors.Is(err, jpoetry.ErrBadNumber) || errors.Is(err, jpoetry.ErrParse) {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.logger.Error("Request failed", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeText reads a textRequest, answering 400 itself when it is unusable.
func (s *server) decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var body textRequest
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxTextRunes)*utf8.UTFMax+1024)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return body, false
	}
	if n := utf8.RuneCountInString(body.Text); n > s.cfg.MaxTextRunes {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("text has %d characters, at most %d allowed", n, s.cfg.MaxTextRunes))
		return body, false
	}
	return body, true
}

func (s *server) allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		s.writeError(w, http.StatusMethodNotAllowed, method+" required")
		return false
	}
	return true
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleSyllables(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodGet) {
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	n, err := s.detector.Counter().Count(word)
	if err != nil {
		s.writeDetectError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, syllablesResponse{Word: word, Syllables: n})
}

func (s *server) handleSpell(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodGet) {
		return
	}
	number := r.URL.Query().Get("number")
	if number == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'number' query parameter")
		return
	}
	var c morph.Case
	if name := r.URL.Query().Get("case"); name != "" {
		var ok bool
		if c, ok = morph.ParseCase(name); !ok {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown case %q", name))
			return
		}
	}
	text, err := s.detector.Speller().Spell(number, c)
	if err != nil {
		s.writeDetectError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, spellResponse{Number: number, Case: string(c), Text: text})
}

func (s *server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodPost) {
		return
	}
	body, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	words, total, err := s.detector.Counter().Annotate(strings.Fields(body.Text))
	if err != nil {
		s.writeDetectError(w, err)
		return
	}
	line := jpoetry.LineInfo{Words: words, Syllables: total}
	s.writeJSON(w, http.StatusOK, annotateResponse{Words: words, Syllables: total, Description: line.Describe()})
}

func (s *server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodPost) {
		return
	}
	body, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	strict := s.cfg.Strict
	if body.Strict != nil {
		strict = *body.Strict
	}
	poems, lines, err := s.detector.DetectPoems(body.Text, strict)
	if err != nil {
		s.writeDetectError(w, err)
		return
	}
	if poems == nil {
		poems = []*jpoetry.Poem{}
	}
	s.writeJSON(w, http.StatusOK, detectResponse{Poems: poems, Lines: lines})
}

// handlePreview returns the least flawed poem of a lenient detection.
func (s *server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodPost) {
		return
	}
	body, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	poems, _, err := s.detector.DetectPoems(body.Text, false)
	if err != nil {
		s.writeDetectError(w, err)
		return
	}
	best := jpoetry.BestPoem(poems)
	if best == nil {
		s.writeError(w, http.StatusNotFound, "no poem found")
		return
	}
	s.writeJSON(w, http.StatusOK, previewResponse{
		Genre:       best.Genre,
		Title:       best.Genre.String(),
		Text:        best.String(),
		Description: best.Describe(),
		Issues:      best.Issues,
	})
}

func (s *server) handleGenres(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, http.MethodGet) {
		return
	}
	s.writeJSON(w, http.StatusOK, genresResponse{Genres: s.detector.GenreSheet()})
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/syllables", s.handleSyllables)
	mux.HandleFunc("/api/spell", s.handleSpell)
	mux.HandleFunc("/api/annotate", s.handleAnnotate)
	mux.HandleFunc("/api/detect", s.handleDetect)
	mux.HandleFunc("/api/preview", s.handlePreview)
	mux.HandleFunc("/api/genres", s.handleGenres)
	return s.cors(s.requestID(s.accessLog(mux)))
}
