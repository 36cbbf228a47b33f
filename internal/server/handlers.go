package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/sukenderreddy/resume-word-suggestor/internal/document"
	"github.com/sukenderreddy/resume-word-suggestor/internal/logger"
	"github.com/sukenderreddy/resume-word-suggestor/internal/match"
)

const (
	headerAnalysisID = "X-Analysis-ID"

	rootMessage = "Resume ATS Score API is running. Use /analyze-resume/ endpoint."
)

type analyzeRequest struct {
	JobDescription *string `mapstructure:"job_description" validate:"required"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadSize)

	if err := r.ParseMultipartForm(s.config.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid form: %s", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, err := s.decodeRequest(r.MultipartForm.Value)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "resume file is required")
		return
	}
	defer file.Close()

	source := "upload:" + header.Filename
	log := logger.WithFields(s.logger, logger.StringFields(logger.StringField{Key: logger.FieldSource, Value: source})...)
	log.Info("received analysis request",
		zap.Int64("resume_size", header.Size),
		zap.Int("job_description_length", len(*req.JobDescription)),
	)

	if !isPDF(header.Header.Get("Content-Type")) {
		s.errorResponse(w, http.StatusBadRequest, "Please upload a valid PDF file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error analyzing resume: %s", err))
		return
	}

	resumeText, err := document.Extract(document.TypePDF, data)
	if err != nil {
		log.Error("extracting text from pdf", zap.Error(err))
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Error processing PDF: %s", err))
		return
	}

	log.Info("extracted resume text", zap.Int("characters", len(resumeText)))

	assessment, err := s.matcher.Evaluate(match.WithSource(r.Context(), source), resumeText, *req.JobDescription)
	if err != nil {
		log.Error("analyzing resume", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Error analyzing resume: %s", err))
		return
	}

	w.Header().Set(headerAnalysisID, assessment.ID)
	s.jsonResponse(w, http.StatusOK, assessment.Result)
}

// decodeRequest maps the first value of every form field onto analyzeRequest.
func (s *Server) decodeRequest(values map[string][]string) (*analyzeRequest, error) {
	flat := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[0]
		}
	}

	var req analyzeRequest
	if err := mapstructure.Decode(flat, &req); err != nil {
		return nil, fmt.Errorf("decoding form: %w", err)
	}

	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%s is %s", verrs[0].Field(), verrs[0].Tag())
		}
		return nil, err
	}

	return &req, nil
}

func isPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == document.TypePDF
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encoding json response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, detail string) {
	s.jsonResponse(w, status, errorBody{Detail: detail})
}
