package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/momentum-hq/momentum/internal/app/tracker"
	"github.com/momentum-hq/momentum/internal/domain"
)

// ─── Tasks ──────────────────────────────────────────────────────────────────

type addTaskRequest struct {
	Title            string              `json:"title"`
	Priority         domain.Priority     `json:"priority"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	Energy           int                 `json:"energy"`
	DueAt            *time.Time          `json:"due_at,omitempty"`
	ScheduledAt      *time.Time          `json:"scheduled_at,omitempty"`
	Contexts         []domain.ContextTag `json:"contexts,omitempty"`
	Tags             []string            `json:"tags,omitempty"`
	ChainID          *uuid.UUID          `json:"chain_id,omitempty"`
	ChainOrder       int                 `json:"chain_order,omitempty"`
	TriggersID       *uuid.UUID          `json:"triggers_id,omitempty"`
	TriggeredByID    *uuid.UUID          `json:"triggered_by_id,omitempty"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	task, err := s.tracker.AddTask(tracker.TaskInput{
		Title:            req.Title,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		Energy:           req.Energy,
		DueAt:            req.DueAt,
		ScheduledAt:      req.ScheduledAt,
		Contexts:         req.Contexts,
		Tags:             req.Tags,
		ChainID:          req.ChainID,
		ChainOrder:       req.ChainOrder,
		TriggersID:       req.TriggersID,
		TriggeredByID:    req.TriggeredByID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	status := domain.TaskStatus(r.URL.Query().Get("status"))
	tasks, err := s.tracker.Tasks(status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, err := s.tracker.Task(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleStartTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, err := s.tracker.StartTask(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type completeTaskRequest struct {
	ActualMinutes *int `json:"actual_minutes,omitempty"`
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req completeTaskRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
	}

	reward, err := s.tracker.CompleteTask(id, req.ActualMinutes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reward)
}

func (s *Server) handleSkipTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, err := s.tracker.SkipTask(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeferTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, err := s.tracker.DeferTask(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ─── Suggestions ────────────────────────────────────────────────────────────

type suggestionsRequest struct {
	Energy           int             `json:"energy"`
	Mood             domain.Mood     `json:"mood,omitempty"`
	Location         domain.Location `json:"location,omitempty"`
	AvailableMinutes int             `json:"available_minutes,omitempty"`
	Limit            int             `json:"limit,omitempty"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	ctx := domain.UserContext{
		Energy:           req.Energy,
		Mood:             req.Mood,
		Location:         req.Location,
		AvailableMinutes: req.AvailableMinutes,
	}
	suggestions, err := s.tracker.Suggest(ctx, req.Limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

// ─── Day boundary ───────────────────────────────────────────────────────────

type closeDayRequest struct {
	Note   string `json:"note,omitempty"`
	Energy int    `json:"energy,omitempty"`
}

func (s *Server) handleCloseDay(w http.ResponseWriter, r *http.Request) {
	var req closeDayRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
	}

	eval, err := s.tracker.CloseDay(req.Note, req.Energy)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

func (s *Server) handleDayLog(w http.ResponseWriter, r *http.Request) {
	ratings, err := s.tracker.DayLog(30)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"days": ratings})
}

// ─── Stats, streak, recovery ────────────────────────────────────────────────

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tracker.Stats()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.tracker.Streak(domain.StreakDailyActivity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"streak":  streak,
		"visible": streak.Visible(),
	})
}

func (s *Server) handleStreakAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.tracker.AnalyzeStreak()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleRecovery(w http.ResponseWriter, r *http.Request) {
	msg, daysMissed, err := s.tracker.WelcomeBack()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"days_missed": daysMissed,
		"message":     msg,
	})
}

// ─── Achievements ───────────────────────────────────────────────────────────

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := s.tracker.Achievements().ListUnlocked()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defs, err := s.tracker.Achievements().Definitions()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"unlocked":    unlocked,
		"definitions": defs,
		"total":       s.tracker.Achievements().TotalCount(),
	})
}

func (s *Server) handleAchievementCelebrated(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.tracker.Achievements().Celebrate(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return uuid.UUID{}, false
	}
	return id, true
}

// writeDomainError maps domain sentinels onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrStreakNotFound),
		errors.Is(err, domain.ErrAchievementNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrDayAlreadyRated):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
