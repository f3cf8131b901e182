package web

import (
	"bytes"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/derekprior/doubles/internal/excel"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	templates, err := NewTemplates()
	if err != nil {
		t.Fatalf("NewTemplates() error: %v", err)
	}
	s := NewServer(NewMemoryStore(), templates, zerolog.Nop())
	s.newRand = func() *rand.Rand { return rand.New(rand.NewSource(1)) }
	return s, s.Routes()
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/schedules", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func validForm() url.Values {
	return url.Values{
		"males":        {"Alan\nBen\nChen\nDev"},
		"females":      {"Erin\r\nFay\r\nGia\r\nHana"},
		"fixed_groups": {"Alan, Ben"},
		"courts":       {"2"},
		"strategy":     {"balanced"},
	}
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t)
	if rec := get(h, "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHome(t *testing.T) {
	_, h := newTestServer(t)
	rec := get(h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`<form method="post" action="/schedules">`, `name="males"`, `value="balanced" selected`, `value="simple"`} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestScheduleLifecycle(t *testing.T) {
	s, h := newTestServer(t)

	rec := postForm(h, validForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body:\n%s", rec.Code, rec.Body.String())
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, "/schedules/") {
		t.Fatalf("Location = %q", location)
	}
	id := strings.TrimPrefix(location, "/schedules/")
	snap, ok := s.store.Get(id)
	if !ok {
		t.Fatalf("snapshot %s not stored", id)
	}
	if len(snap.Tournament.Teams) != 4 {
		t.Errorf("got %d teams, want 4", len(snap.Tournament.Teams))
	}

	t.Run("show", func(t *testing.T) {
		rec := get(h, location)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{"Round 1", "Round 10", "Court 2:", "Team Statistics", "Alan &#43; Ben"} {
			if !strings.Contains(body, want) {
				t.Errorf("schedule page missing %q", want)
			}
		}
	})

	t.Run("report", func(t *testing.T) {
		rec := get(h, location+"/report.txt")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Errorf("Content-Type = %q", ct)
		}
		if !strings.HasPrefix(rec.Body.String(), "Badminton Doubles Schedule\n") {
			t.Errorf("report body:\n%s", rec.Body.String())
		}
	})

	t.Run("workbook", func(t *testing.T) {
		rec := get(h, location+"/schedule.xlsx")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Errorf("Content-Type = %q", ct)
		}
		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Fatalf("OpenReader error: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows(excel.ScheduleSheet)
		if err != nil {
			t.Fatalf("GetRows error: %v", err)
		}
		if len(rows) != 1+snap.Tournament.ScheduledMatches() {
			t.Errorf("got %d rows, want header + %d matches", len(rows), snap.Tournament.ScheduledMatches())
		}
	})
}

func TestScheduleCreateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(url.Values)
		want   string
	}{
		{
			name:   "courts not a number",
			modify: func(v url.Values) { v.Set("courts", "two") },
			want:   "Number of courts must be a whole number.",
		},
		{
			name:   "too many courts",
			modify: func(v url.Values) { v.Set("courts", "11") },
			want:   "court count must be between 1 and 10, got 11",
		},
		{
			name: "no players",
			modify: func(v url.Values) {
				v.Set("males", "  \n ")
				v.Set("females", "")
				v.Set("fixed_groups", "")
			},
			want: "at least one male or female player is required",
		},
		{
			name: "too few players",
			modify: func(v url.Values) {
				v.Set("males", "Alan\nBen")
				v.Set("females", "Erin")
				v.Set("fixed_groups", "")
			},
			want: "not enough players for doubles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestServer(t)
			form := validForm()
			tt.modify(form)

			rec := postForm(h, form)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", rec.Code)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q:\n%s", tt.want, body)
			}
			if !strings.Contains(body, `<form method="post"`) {
				t.Error("form not re-rendered")
			}
		})
	}
}

func TestScheduleCreateKeepsInput(t *testing.T) {
	_, h := newTestServer(t)
	form := validForm()
	form.Set("courts", "0")
	form.Set("strategy", "simple")

	body := postForm(h, form).Body.String()
	for _, want := range []string{"Alan\nBen\nChen\nDev", `value="simple" selected`} {
		if !strings.Contains(body, want) {
			t.Errorf("re-rendered form missing %q", want)
		}
	}
}

func TestUnknownSchedule(t *testing.T) {
	_, h := newTestServer(t)
	for _, path := range []string{"/schedules/missing", "/schedules/missing/report.txt", "/schedules/missing/schedule.xlsx"} {
		if rec := get(h, path); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	a := store.Save(nil)
	b := store.Save(nil)
	if a.ID == b.ID {
		t.Error("snapshots share an id")
	}
	if got, ok := store.Get(a.ID); !ok || got.ID != a.ID {
		t.Errorf("Get(%s) = %v, %v", a.ID, got, ok)
	}
	if _, ok := store.Get("nope"); ok {
		t.Error("Get of unknown id succeeded")
	}
}
