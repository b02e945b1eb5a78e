// Package chi exposes the pose search app over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/posedex/internal/domain"
	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
	"github.com/kailas-cloud/posedex/internal/domain/search/request"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/posedex/internal/logger"
	healthuc "github.com/kailas-cloud/posedex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/posedex/internal/usecase/search"
	speechuc "github.com/kailas-cloud/posedex/internal/usecase/speech"
)

const (
	maxBodyBytes = 1 << 20

	msgMissingPrompt      = "Missing prompt in request body"
	msgMissingDescription = "Missing description"
	msgInvalidBody        = "Invalid request body"
)

// Server holds the HTTP handlers.
type Server struct {
	search *searchuc.Service
	speech *speechuc.Service
	health *healthuc.Service
	topK   int
	logger *zap.Logger
}

// NewServer creates the HTTP handlers. topK is the number of results per search.
func NewServer(
	search *searchuc.Service,
	speech *speechuc.Service,
	health *healthuc.Service,
	topK int,
	logger *zap.Logger,
) *Server {
	return &Server{
		search: search,
		speech: speech,
		health: health,
		topK:   topK,
		logger: logger,
	}
}

type searchRequest struct {
	Prompt         string `json:"prompt"`
	ExpertiseLevel string `json:"expertise_level"`
	PoseType       string `json:"pose_type"`
}

type poseItem struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ExpertiseLevel string   `json:"expertise_level"`
	PhotoURL       string   `json:"photo_url"`
	PoseType       []string `json:"pose_type"`
}

// searchResponse always carries both keys; exactly one of them is non-null.
type searchResponse struct {
	Results []poseItem `json:"results"`
	Error   *string    `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Search handles POST /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	log := logpkg.FromContext(r.Context())

	var body searchRequest
	if err := decodeBody(w, r, &body, func(get func(string) string) {
		body.Prompt = get("prompt")
		body.ExpertiseLevel = get("expertise_level")
		body.PoseType = get("pose_type")
	}); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	req, err := buildSearchRequest(body, s.topK)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, domain.ErrMissingInput) {
			msg = msgMissingPrompt
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	log.Info("Received search request", zap.String("prompt", req.Query()), zap.Int("top_k", req.TopK()))

	results, err := s.search.Search(r.Context(), &req)
	if err != nil {
		log.Error("Search failed", zap.Error(err))
		msg := err.Error()
		writeJSON(w, http.StatusOK, searchResponse{Error: &msg})
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: toPoseItems(results)})
}

func buildSearchRequest(body searchRequest, topK int) (request.Request, error) {
	filters, err := filter.ForPose(body.ExpertiseLevel, body.PoseType)
	if err != nil {
		return request.Request{}, fmt.Errorf("filters: %w: %w", err, domain.ErrInvalidInput)
	}

	req, err := request.New(body.Prompt, filters, topK)
	if err != nil {
		return request.Request{}, fmt.Errorf("build search request: %w", err)
	}
	return req, nil
}

func toPoseItems(results []result.Result) []poseItem {
	items := make([]poseItem, len(results))
	for i := range results {
		r := &results[i]
		items[i] = poseItem{
			Name:           r.Name(),
			Description:    r.Description(),
			ExpertiseLevel: r.ExpertiseLevel(),
			PhotoURL:       r.PhotoURL(),
			PoseType:       r.PoseType(),
		}
	}
	return items
}

type audioRequest struct {
	Description string `json:"description"`
}

// GenerateAudio handles POST /generate_audio.
func (s *Server) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	var body audioRequest
	if err := decodeBody(w, r, &body, func(get func(string) string) {
		body.Description = get("description")
	}); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	audio, err := s.speech.Synthesize(r.Context(), body.Description)
	if err != nil {
		if errors.Is(err, domain.ErrMissingInput) {
			writeError(w, http.StatusBadRequest, msgMissingDescription)
			return
		}
		logpkg.FromContext(r.Context()).Error("Error generating audio", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", "attachment; filename=audio.wav")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// decodeBody reads a JSON body, or a urlencoded form through fromForm.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(get func(string) string)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}
		fromForm(r.PostForm.Get)
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
