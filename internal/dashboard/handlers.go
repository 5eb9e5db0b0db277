package dashboard

import (
	"github.com/pkg/errors"
	"html/template"
	"net/http"
	"pricewatch/internal/api"
	"pricewatch/internal/notice"
	"pricewatch/internal/view"
)

const errorState = `<p class="error">Error loading products. Please refresh the page.</p>`
const notFoundState = `<p class="empty-state">No products found. Add your first product above!</p>`

// index renders the page for the current state: auth forms when logged out,
// the dashboard with a freshly fetched product list when logged in. The list
// is never kept between requests; every render re-fetches.
func (s *Server) index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{}
		if n, ok := s.Notices.Current(); ok {
			data.Notice = &n
		}

		u := s.currentUser()
		if u == nil {
			s.writePage(w, data)
			return
		}
		data.LoggedIn = true
		data.Username = u.Username

		tid := getTraceContext(r.Context()).traceID
		ps, err := s.API.ListProductsForUser(r.Context(), u.ID)
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("index: Error loading Products for UserID: %d, err: %v, TraceID: %s", u.ID, err, tid)
				data.ListHTML = errorState
			} else {
				s.Logger.Debugf("index: Backend refused Product list for UserID: %d, err: %v, TraceID: %s", u.ID, err, tid)
				data.ListHTML = notFoundState
			}
			s.writePage(w, data)
			return
		}
		s.Logger.Debugf("index: Rendering %d Product(s) for UserID: %d, TraceID: %s", len(ps), u.ID, tid)
		data.ListHTML = template.HTML(view.RenderProducts(ps, s.Location))
		s.writePage(w, data)
	}
}

func (s *Server) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		username := r.PostFormValue("username")
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		u, err := s.API.Register(r.Context(), username, email, password)
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("register: Error registering user with email: %s, err: %v, TraceID: %s", email, err, tid)
				s.Notices.Show("Network error. Please try again.", notice.SeverityError)
			} else {
				s.Logger.Debugf("register: Backend refused registration for email: %s, err: %v, TraceID: %s", email, err, tid)
				s.Notices.Show(api.Message(err, "Registration failed"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.setUser(&u)
		if err := s.Sessions.Save(u); err != nil {
			s.Logger.Errorf("register: Error persisting session for UserID: %d, err: %v, TraceID: %s", u.ID, err, tid)
		}
		s.Notices.Show("Registration successful!", notice.SeveritySuccess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// login resolves the email to a user record and starts a session. The
// backend offers no credential check, so the password field is read but
// never leaves this process; see the login note in DESIGN.md.
func (s *Server) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		email := r.PostFormValue("email")
		_ = r.PostFormValue("password")

		u, err := s.API.FindUserByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("login: Error finding user with email: %s, err: %v, TraceID: %s", email, err, tid)
				s.Notices.Show("Network error. Please try again.", notice.SeverityError)
			} else {
				s.Logger.Debugf("login: Failed login for email: %s, err: %v, TraceID: %s", email, err, tid)
				s.Notices.Show("Invalid email or password", notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.setUser(&u)
		if err := s.Sessions.Save(u); err != nil {
			s.Logger.Errorf("login: Error persisting session for UserID: %d, err: %v, TraceID: %s", u.ID, err, tid)
		}
		s.Logger.Infof("login: Logged in UserID: %d, username: %s, TraceID: %s", u.ID, u.Username, tid)
		s.Notices.Show("Login successful!", notice.SeveritySuccess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// logout tears the session down locally. The backend holds no session state
// for this client, so there is nothing to call.
func (s *Server) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		s.setUser(nil)
		if err := s.Sessions.Clear(); err != nil {
			s.Logger.Errorf("logout: Error clearing session, err: %v, TraceID: %s", err, tid)
		}
		s.Notices.Show("Logged out successfully", notice.SeverityInfo)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
