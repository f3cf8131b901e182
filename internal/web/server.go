package web

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Server struct {
	store     Store
	templates *Templates
	logger    zerolog.Logger
	newRand   func() *rand.Rand
}

func NewServer(store Store, templates *Templates, logger zerolog.Logger) *Server {
	return &Server{
		store:     store,
		templates: templates,
		logger:    logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", s.handleHome)
	r.Post("/schedules", s.handleScheduleCreate)
	r.Get("/schedules/{scheduleID}", s.handleScheduleShow)
	r.Get("/schedules/{scheduleID}/report.txt", s.handleScheduleReport)
	r.Get("/schedules/{scheduleID}/schedule.xlsx", s.handleScheduleWorkbook)

	return r
}
