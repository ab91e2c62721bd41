package products

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ProductsAPI/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20
	bannerText   = "Hello World! Products API is running."
)

type Server struct {
	Store Store
	Log   *zap.Logger

	// WriteLimiter, when set, throttles create/update/delete per client IP.
	WriteLimiter *kit.IPRateLimiter
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(kit.Handle(s.Log, func(http.ResponseWriter, *http.Request) error { return ErrRouteNotFound }))
	r.MethodNotAllowed(kit.Handle(s.Log, func(http.ResponseWriter, *http.Request) error { return ErrMethodNotAllowed }))

	r.Get("/", s.banner)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", s.handle(s.list))
		r.Get("/stats", s.handle(s.stats))
		r.Get("/search/{name}", s.handle(s.search))
		r.Get("/{id}", s.handle(s.get))

		r.Group(func(wr chi.Router) {
			if s.WriteLimiter != nil {
				wr.Use(s.WriteLimiter.Middleware)
			}
			wr.Post("/", s.handle(s.create))
			wr.Put("/{id}", s.handle(s.update))
			wr.Delete("/{id}", s.handle(s.delete))
		})
	})

	return r
}

func (s *Server) handle(fn kit.HandlerFunc) http.HandlerFunc {
	return kit.Handle(s.Log, fn)
}

func (s *Server) banner(w http.ResponseWriter, _ *http.Request) {
	kit.WriteText(w, http.StatusOK, bannerText)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	page, limit := ParsePaging(q.Get("page"), q.Get("limit"))

	kit.WriteJSON(w, http.StatusOK, List(s.Store.All(), q.Get("category"), page, limit))
	return nil
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) error {
	p, ok := s.Store.Get(chi.URLParam(r, "id"))
	if !ok {
		return ErrProductNotFound
	}
	kit.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) error {
	in, err := decodeInput(w, r)
	if err != nil {
		return err
	}

	p := s.Store.Insert(in.Fields())
	s.debug("product created", p.ID)

	kit.WriteJSON(w, http.StatusCreated, p)
	return nil
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) error {
	in, err := decodeInput(w, r)
	if err != nil {
		return err
	}

	p, err := s.Store.Replace(chi.URLParam(r, "id"), in.Fields())
	if err != nil {
		return storeErr(err)
	}
	s.debug("product replaced", p.ID)

	kit.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) error {
	p, err := s.Store.Delete(chi.URLParam(r, "id"))
	if err != nil {
		return storeErr(err)
	}
	s.debug("product deleted", p.ID)

	kit.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) error {
	kit.WriteJSON(w, http.StatusOK, SearchByName(s.Store.All(), pathParam(r, "name")))
	return nil
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) error {
	kit.WriteJSON(w, http.StatusOK, CountByCategory(s.Store.All()))
	return nil
}

func (s *Server) debug(msg, id string) {
	if s.Log != nil {
		s.Log.Debug(msg, zap.String("product_id", id))
	}
}

func storeErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// pathParam returns a decoded URL parameter. chi routes on RawPath when the
// request path carries escapes such as %2F, leaving the parameter encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

// decodeInput reads a create/update body and runs the presence check. An
// empty body counts as a payload with every field missing.
func decodeInput(w http.ResponseWriter, r *http.Request) (Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var in Input
	if err := dec.Decode(&in); err != nil {
		return Input{}, bodyErr(err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Input{}, bodyErr(err)
	}

	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func bodyErr(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return ErrMissingFields
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	default:
		return ErrInvalidBody
	}
}
