package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coltonk1/trackify-jobs/internal/ingestion"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// handleRankResumes scores one uploaded resume against a job description.
// Multipart fields: "file" (pdf or txt), and either "job_description" or
// "job_url".
func (s *Server) handleRankResumes(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.writeError(w, log, &ErrFileTooLarge{Limit: s.maxUpload})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing resume file")
		return
	}
	defer file.Close()

	req := &types.ScoreRequest{
		Filename:       header.Filename,
		JobDescription: r.FormValue("job_description"),
		JobURL:         r.FormValue("job_url"),
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, log, err)
		return
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if ext != ".pdf" && ext != ".txt" {
		s.writeError(w, log, &ErrUnsupportedMedia{Extension: ext})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, log, &ErrFileTooLarge{Limit: s.maxUpload})
		return
	}

	resumeText, err := ingestion.Extract(req.Filename, data)
	if err != nil {
		s.writeError(w, log, err)
		return
	}

	jobText := req.JobDescription
	if jobText == "" {
		jobText, err = ingestion.FetchJobText(r.Context(), req.JobURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "could not fetch job posting")
			return
		}
	}

	record, err := s.scorer.Score(r.Context(), resumeText, jobText)
	if err != nil {
		s.writeError(w, log, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// writeError logs the error and responds with the mapped status. Client
// errors keep their message; internals are masked.
func (s *Server) writeError(w http.ResponseWriter, log *zerolog.Logger, err error) {
	status := HTTPStatus(err)

	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	s.errorResponse(w, status, message)
}
