package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridtable/pkg/cache"
	"github.com/matzehuels/gridtable/pkg/errors"
	"github.com/matzehuels/gridtable/pkg/table"
)

const (
	defaultAddr     = ":8080"
	defaultCacheTTL = time.Hour
	shutdownTimeout = 10 * time.Second
	maxRequestBody  = 4 << 20 // 4 MiB
)

// newServeCmd creates the serve command, an HTTP service that renders
// tables from posted CSV or JSON data.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := &server{
				logger: logger,
				cache:  newCache(noCache),
				ttl:    defaultCacheTTL,
			}
			defer srv.cache.Close()
			return srv.listen(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// server is the HTTP render service.
type server struct {
	logger *log.Logger
	cache  cache.Cache
	ttl    time.Duration
}

// renderRequest is the POST /render body.
type renderRequest struct {
	Format string `json:"format"`           // csv or json
	Style  string `json:"style,omitempty"`  // built-in style name, default ascii
	Theme  string `json:"theme,omitempty"`  // inline TOML theme, overrides style
	Header *bool  `json:"header,omitempty"` // first CSV record is the header, default true
	Data   string `json:"data"`             // raw table data
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *server) listen(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	return r
}

// requestID tags every request with a UUID, echoed in the X-Request-ID
// header and attached to the request-scoped logger.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := withLogger(r.Context(), s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())
	prog := newProgress(logger)

	var req renderRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request"))
		return
	}

	styleKey := req.Style
	if styleKey == "" {
		styleKey = defaultStyle
	}
	if req.Theme != "" {
		styleKey = "theme:" + cache.Hash([]byte(req.Theme))
	}
	key := cache.RenderKey([]byte(req.Data), req.Format, styleKey)
	if rendered, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		logger.Debug("cache hit", "key", key)
		s.writeTable(w, rendered)
		return
	}

	rendered, err := s.render(&req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, rendered, s.ttl); err != nil {
		logger.Warn("caching render failed", "err", err)
	}
	s.writeTable(w, rendered)
	prog.done(fmt.Sprintf("Rendered %d bytes", len(rendered)))
}

func (s *server) render(req *renderRequest) ([]byte, error) {
	style, err := s.style(req)
	if err != nil {
		return nil, err
	}
	hasHeader := req.Header == nil || *req.Header
	tbl, err := buildTable([]byte(req.Data), req.Format, hasHeader)
	if err != nil {
		return nil, err
	}
	tbl.SetStyle(style)
	return []byte(tbl.String() + "\n"), nil
}

func (s *server) style(req *renderRequest) (table.Style, error) {
	if req.Theme != "" {
		return table.ParseTheme([]byte(req.Theme))
	}
	name := req.Style
	if name == "" {
		name = defaultStyle
	}
	style, ok := table.StyleByName(name)
	if !ok {
		return table.Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name)
	}
	return style, nil
}

func (s *server) writeTable(w http.ResponseWriter, rendered []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(rendered)
}

// writeError maps structured error codes to HTTP statuses.
func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidSpan,
		errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
