package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/derekprior/doubles/internal/config"
	"github.com/derekprior/doubles/internal/excel"
	"github.com/derekprior/doubles/internal/report"
	"github.com/derekprior/doubles/internal/schedule"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	view := HomeView{
		BaseView: BaseView{Title: "New schedule"},
		Form:     defaultForm(),
	}
	s.render(w, r, http.StatusOK, "index.html", view)
}

func (s *Server) handleScheduleCreate(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	form := defaultForm()
	form.Males = r.FormValue("males")
	form.Females = r.FormValue("females")
	form.FixedGroups = r.FormValue("fixed_groups")
	form.Strategy = strings.TrimSpace(r.FormValue("strategy"))

	courts, err := strconv.Atoi(strings.TrimSpace(r.FormValue("courts")))
	if err != nil {
		form.Error = "Number of courts must be a whole number."
		s.renderFormError(w, r, form)
		return
	}
	form.Courts = courts

	cfg := &config.Config{
		Players: config.Players{
			Male:   config.ParseNames(form.Males),
			Female: config.ParseNames(form.Females),
		},
		FixedGroups: config.ParseFixedGroups(form.FixedGroups),
		Courts:      courts,
		Strategy:    form.Strategy,
	}

	t, err := schedule.Generate(cfg, s.newRand())
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) || errors.Is(err, schedule.ErrInsufficientPlayers) {
			form.Error = err.Error()
			s.renderFormError(w, r, form)
			return
		}
		logger.Error().Err(err).Msg("generating schedule")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	snap := s.store.Save(t)
	logger.Info().
		Str("schedule_id", snap.ID).
		Int("teams", len(t.Teams)).
		Int("courts", t.Courts).
		Str("strategy", t.Strategy).
		Msg("schedule generated")
	http.Redirect(w, r, "/schedules/"+snap.ID, http.StatusSeeOther)
}

func (s *Server) renderFormError(w http.ResponseWriter, r *http.Request, form FormView) {
	view := HomeView{
		BaseView: BaseView{Title: "New schedule"},
		Form:     form,
	}
	s.render(w, r, http.StatusUnprocessableEntity, "index.html", view)
}

func (s *Server) handleScheduleShow(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "schedule.html", newScheduleView(snap))
}

func (s *Server) handleScheduleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := report.Write(w, snap.Tournament); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("schedule_id", snap.ID).Msg("writing report")
	}
}

func (s *Server) handleScheduleWorkbook(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	snap, ok := s.snapshot(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := excel.Generate(snap.Tournament)
	if err != nil {
		logger.Error().Err(err).Str("schedule_id", snap.ID).Msg("generating workbook")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule-%s.xlsx"`, snap.ID))
	if err := f.Write(w); err != nil {
		logger.Error().Err(err).Str("schedule_id", snap.ID).Msg("writing workbook")
	}
}

func (s *Server) snapshot(r *http.Request) (Snapshot, bool) {
	return s.store.Get(chi.URLParam(r, "scheduleID"))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := s.templates.Render(w, status, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("rendering")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
