package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/domain/repository"
	"github.com/trip-dashboard/internal/pkg/format"
	"github.com/trip-dashboard/internal/view"
)

// DashboardSession - страница дашборда и ее контроллер
type DashboardSession struct {
	ID         string
	Page       *view.Page
	Controller *DashboardController

	mu       sync.Mutex
	lastSeen time.Time
	seenSeq  uint64
}

func (s *DashboardSession) touch(now time.Time, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
	s.seenSeq = seq
}

func (s *DashboardSession) seen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seenSeq
}

// LastSeen возвращает время последнего обращения к сессии
func (s *DashboardSession) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionUseCase хранит по одному контроллеру на сессию страницы
type SessionUseCase struct {
	tripAPI   repository.TripAPIRepository
	formatter *format.Formatter
	settings  ControllerSettings
	defaults  view.FormValues
	mapView   view.MapView
	idleTTL   time.Duration
	maxCount  int
	logger    *zap.Logger

	seq      atomic.Uint64
	mu       sync.RWMutex
	sessions map[string]*DashboardSession
}

// NewSessionUseCase создает новый экземпляр SessionUseCase.
// maxSessions <= 0 снимает ограничение на число сессий.
func NewSessionUseCase(
	tripAPI repository.TripAPIRepository,
	formatter *format.Formatter,
	settings ControllerSettings,
	defaults view.FormValues,
	mapView view.MapView,
	idleTTL time.Duration,
	maxSessions int,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		tripAPI:   tripAPI,
		formatter: formatter,
		settings:  settings,
		defaults:  defaults,
		mapView:   mapView,
		idleTTL:   idleTTL,
		maxCount:  maxSessions,
		logger:    logger,
		sessions:  make(map[string]*DashboardSession),
	}
}

// Create создает сессию со свежей страницей и контроллером
func (uc *SessionUseCase) Create() *DashboardSession {
	page := view.NewPage(uc.defaults, uc.mapView)
	sess := &DashboardSession{
		ID:   uuid.NewString(),
		Page: page,
		Controller: NewDashboardController(
			uc.tripAPI,
			uc.formatter,
			SurfacesFromPage(page),
			uc.settings,
			uc.logger.With(zap.String("component", "dashboard_controller")),
		),
	}
	sess.touch(time.Now(), uc.seq.Add(1))

	uc.mu.Lock()
	evicted := uc.evictLocked()
	uc.sessions[sess.ID] = sess
	total := len(uc.sessions)
	uc.mu.Unlock()

	if evicted > 0 {
		uc.logger.Info("Least recently seen dashboard sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("max_sessions", uc.maxCount))
	}

	uc.logger.Debug("Dashboard session created",
		zap.String("session_id", sess.ID),
		zap.Int("sessions", total))
	return sess
}

// Get возвращает сессию по ID и обновляет время последнего обращения
func (uc *SessionUseCase) Get(id string) (*DashboardSession, bool) {
	if id == "" {
		return nil, false
	}

	uc.mu.RLock()
	sess, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, false
	}

	sess.touch(time.Now(), uc.seq.Add(1))
	return sess, true
}

// evictLocked освобождает место под новую сессию, удаляя самые давние.
// Вызывается под uc.mu.
func (uc *SessionUseCase) evictLocked() int {
	if uc.maxCount <= 0 {
		return 0
	}

	evicted := 0
	for len(uc.sessions) >= uc.maxCount {
		var (
			oldestID  string
			oldestSeq uint64
		)
		for id, sess := range uc.sessions {
			if seq := sess.seen(); oldestID == "" || seq < oldestSeq {
				oldestID, oldestSeq = id, seq
			}
		}
		delete(uc.sessions, oldestID)
		evicted++
	}
	return evicted
}

// GetOrCreate возвращает существующую сессию или создает новую
func (uc *SessionUseCase) GetOrCreate(id string) (sess *DashboardSession, created bool) {
	if sess, ok := uc.Get(id); ok {
		return sess, false
	}
	return uc.Create(), true
}

// Sweep удаляет сессии, неактивные дольше idleTTL
func (uc *SessionUseCase) Sweep(now time.Time) int {
	if uc.idleTTL <= 0 {
		return 0
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed := 0
	for id, sess := range uc.sessions {
		if now.Sub(sess.LastSeen()) > uc.idleTTL {
			delete(uc.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		uc.logger.Info("Idle dashboard sessions removed",
			zap.Int("removed", removed),
			zap.Int("remaining", len(uc.sessions)))
	}
	return removed
}

// Count возвращает количество активных сессий
func (uc *SessionUseCase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.sessions)
}
