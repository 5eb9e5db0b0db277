package dashboard

import (
	"github.com/gorilla/mux"
	"net/http"
)

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw, s.maxBytesMw)

	r.HandleFunc("/", s.index()).Methods(http.MethodGet)
	r.HandleFunc("/register", s.register()).Methods(http.MethodPost)
	r.HandleFunc("/login", s.login()).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.logout()).Methods(http.MethodPost)

	authed := r.PathPrefix("/").Subrouter()
	authed.Use(s.authMw)
	authed.HandleFunc("/products", s.productAdd()).Methods(http.MethodPost)
	authed.HandleFunc("/products/{productID}/delete", s.productDelete()).Methods(http.MethodPost)
	authed.HandleFunc("/products/{productID}/check", s.priceCheck()).Methods(http.MethodPost)
	authed.HandleFunc("/products/{productID}/toggle-email", s.toggleEmail()).Methods(http.MethodPost)
	authed.HandleFunc("/check-all", s.priceCheckAll()).Methods(http.MethodPost)
	authed.HandleFunc("/quick-check", s.quickCheck()).Methods(http.MethodPost)

	// Registered last so the authed routes above keep precedence; unknown
	// paths 404 without going through the auth check.
	r.PathPrefix("/").Handler(http.NotFoundHandler())

	return r
}
