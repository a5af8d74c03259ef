package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (avoids a third-party
// routing dependency).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

// RegisterAuthRoutes wires the login endpoint.
func (r *Router) RegisterAuthRoutes(a *AuthHandler) {
	r.Handle("/api/login", requireMethod(http.MethodPost, a.Login))
}

// RegisterElectorRoutes wires the registry read endpoints.
func (r *Router) RegisterElectorRoutes(e *ElectorHandler) {
	r.Handle("/api/re/elector", requireMethod(http.MethodGet, e.GetElector))
	r.Handle("/api/re/electores/buscar", requireMethod(http.MethodGet, e.SearchElectors))
	r.Handle("/api/get-movimientos-re/", requireMethod(http.MethodGet, e.GetMovimientos))
	r.Handle("/api/ac/", requireMethod(http.MethodGet, e.GetPersonAC))
}

// RegisterUserRoutes wires account management. The subtree handler splits
// collection, item and bulk-import paths itself.
func (r *Router) RegisterUserRoutes(u *UsersHandler) {
	r.Handle("/api/usuarios", u.Collection)
	r.Handle("/api/usuarios/", func(w http.ResponseWriter, req *http.Request) {
		if strings.TrimPrefix(req.URL.Path, "/api/usuarios/") == "carga-masiva" {
			u.Import(w, req)
			return
		}
		u.Item(w, req)
	})
}
