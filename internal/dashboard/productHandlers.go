package dashboard

import (
	"fmt"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"net/http"
	"pricewatch/internal/api"
	"pricewatch/internal/misc"
	"pricewatch/internal/notice"
	"strconv"
	"strings"
)

func productID(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["productID"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid product id: %s", idStr)
	}
	return id, nil
}

func (s *Server) productAdd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		u := s.currentUser()
		if u == nil {
			// Logged out between the auth check and here.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		name := r.PostFormValue("name")
		url := r.PostFormValue("url")
		var targetPrice *float64
		if tpStr := strings.TrimSpace(r.PostFormValue("targetPrice")); tpStr != "" {
			tp, err := strconv.ParseFloat(tpStr, 64)
			if err != nil {
				s.Logger.Debugf("productAdd: Invalid target price: %s, err: %v, TraceID: %s", tpStr, err, tid)
				s.Notices.Show("Invalid target price", notice.SeverityError)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			targetPrice = &tp
		}

		// UserID always comes from the active session, never from the form.
		p, err := s.API.CreateProduct(r.Context(), api.CreateProductRequest{
			Name:        name,
			URL:         url,
			UserID:      u.ID,
			TargetPrice: targetPrice,
		})
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("productAdd: Error adding Product: %s, err: %v, TraceID: %s", misc.StringLimit(name, 45), err, tid)
				s.Notices.Show("Network error. Please try again.", notice.SeverityError)
			} else {
				s.Logger.Debugf("productAdd: Backend refused Product: %s, err: %v, TraceID: %s", misc.StringLimit(name, 45), err, tid)
				s.Notices.Show(api.Message(err, "Failed to add product"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.Logger.Infof("productAdd: Added Product with ID: %d for UserID: %d, TraceID: %s", p.ID, u.ID, tid)
		s.Notices.Show("Product added successfully!", notice.SeveritySuccess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) productDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		id, err := productID(r)
		if err != nil {
			s.Logger.Debugf("productDelete: Bad product id, err: %v, TraceID: %s", err, tid)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if err := s.API.DeleteProduct(r.Context(), id); err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("productDelete: Error deleting ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show("Error deleting product", notice.SeverityError)
			} else {
				s.Logger.Debugf("productDelete: Backend refused deleting ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show(api.Message(err, "Failed to delete product"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.Notices.Show("Product deleted successfully", notice.SeveritySuccess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// priceCheck triggers a scrape for one product. The trigger is acked, not
// awaited: an optimistic "in progress" notice shows immediately and the
// completion notice fires after a fixed delay, whether or not the scrape
// actually finished by then.
func (s *Server) priceCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		id, err := productID(r)
		if err != nil {
			s.Logger.Debugf("priceCheck: Bad product id, err: %v, TraceID: %s", err, tid)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		s.Notices.Show("Checking price...", notice.SeverityInfo)
		if err := s.API.TriggerPriceCheck(r.Context(), id); err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("priceCheck: Error triggering check for ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show("Error checking price", notice.SeverityError)
			} else {
				s.Logger.Debugf("priceCheck: Backend refused check for ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show(api.Message(err, "Failed to check price"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.scheduleCheckNotice(s.CheckDelay, "Price check completed!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) priceCheckAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID

		s.Notices.Show("Checking all prices...", notice.SeverityInfo)
		if err := s.API.TriggerCheckAll(r.Context()); err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("priceCheckAll: Error triggering check-all, err: %v, TraceID: %s", err, tid)
				s.Notices.Show("Error checking prices", notice.SeverityError)
			} else {
				s.Logger.Debugf("priceCheckAll: Backend refused check-all, err: %v, TraceID: %s", err, tid)
				s.Notices.Show(api.Message(err, "Failed to check prices"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.scheduleCheckNotice(s.CheckAllDelay, "All prices checked!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) toggleEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		id, err := productID(r)
		if err != nil {
			s.Logger.Debugf("toggleEmail: Bad product id, err: %v, TraceID: %s", err, tid)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		p, err := s.API.ToggleEmailNotifications(r.Context(), id)
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("toggleEmail: Error toggling email alerts for ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show("Error updating email notifications", notice.SeverityError)
			} else {
				s.Logger.Debugf("toggleEmail: Backend refused toggle for ProductID: %d, err: %v, TraceID: %s", id, err, tid)
				s.Notices.Show(api.Message(err, "Failed to update email notifications"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if p.EmailEnabled() {
			s.Notices.Show("Email notifications enabled for this product", notice.SeveritySuccess)
		} else {
			s.Notices.Show("Email notifications disabled for this product", notice.SeveritySuccess)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// quickCheck scrapes an arbitrary URL once, without tracking it.
func (s *Server) quickCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		url := r.PostFormValue("url")

		res, err := s.API.CheckURL(r.Context(), url)
		if err != nil {
			if errors.Is(err, api.ErrUnreachable) {
				s.Logger.Errorf("quickCheck: Error checking url: %s, err: %v, TraceID: %s", misc.StringLimit(url, 100), err, tid)
				s.Notices.Show("Network error. Please try again.", notice.SeverityError)
			} else {
				s.Logger.Debugf("quickCheck: Backend refused checking url: %s, err: %v, TraceID: %s", misc.StringLimit(url, 100), err, tid)
				s.Notices.Show(api.Message(err, "Failed to check price"), notice.SeverityError)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if !res.Success || res.Price == nil {
			msg := res.Error
			if msg == "" {
				msg = "Could not extract price from URL"
			}
			s.Notices.Show(msg, notice.SeverityError)
		} else {
			s.Notices.Show(fmt.Sprintf("Current price: $%.2f", *res.Price), notice.SeveritySuccess)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
