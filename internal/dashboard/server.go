// Package dashboard is the UI controller: it serves the dashboard pages,
// proxies every user action to the backend API, and owns the session and
// notification state.
package dashboard

import (
	"pricewatch/internal/api"
	"pricewatch/internal/model"
	"pricewatch/internal/notice"
	"pricewatch/internal/session"
	"sync"
	"time"
)

type Server struct {
	API      api.Client
	Sessions session.Store
	Notices  *notice.Banner
	Logger   logger
	Location *time.Location

	// Delays before the optimistic completion notice after a price check
	// trigger. The backend only acks the trigger and never reports actual
	// scrape completion, so these are a guess by design.
	CheckDelay    time.Duration
	CheckAllDelay time.Duration

	mu            sync.Mutex
	user          *model.User
	pendingChecks sync.WaitGroup
}

type logger interface {
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// RestoreSession loads the persisted session, if any. A corrupt session file
// was already discarded by the store; only real I/O failures surface here,
// and those leave the dashboard logged out rather than broken.
func (s *Server) RestoreSession() {
	u, err := s.Sessions.Load()
	if err != nil {
		s.Logger.Errorf("RestoreSession: Error loading session, err: %v", err)
		return
	}
	if u != nil {
		s.Logger.Infof("RestoreSession: Restored session for UserID: %d, username: %s", u.ID, u.Username)
		s.setUser(u)
	}
}

func (s *Server) currentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Server) setUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// scheduleCheckNotice posts the optimistic completion notice for a price
// check after the configured delay. The task is tracked so tests and
// shutdown can wait for it; the notice slot itself last-wins, so stacked
// checks need no further coordination.
func (s *Server) scheduleCheckNotice(delay time.Duration, message string) {
	s.pendingChecks.Add(1)
	time.AfterFunc(delay, func() {
		defer s.pendingChecks.Done()
		s.Notices.Show(message, notice.SeveritySuccess)
	})
}

// WaitForPendingChecks blocks until every scheduled check notice has fired.
func (s *Server) WaitForPendingChecks() {
	s.pendingChecks.Wait()
}
