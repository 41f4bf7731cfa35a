package srv

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	secure "github.com/srikrsna/security-headers"

	"github.com/opd-ai/prdbot/prdcompiler"
	"github.com/opd-ai/prdbot/srv/util"
)

// Server wires the conversation loop to the document compiler. It owns no
// request state beyond the session store; everything else is per-request.
type Server struct {
	router   chi.Router
	llm      LLM
	store    *ConversationStore
	compiler *prdcompiler.Compiler
}

func NewServer(llm LLM) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		llm:      llm,
		store:    NewConversationStore(),
		compiler: prdcompiler.NewCompiler(prdcompiler.DefaultStyle()),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Session-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) setupRoutes() {
	headers := &secure.Secure{
		STSMaxAgeSeconds:     90 * 24 * 3600,
		STSIncludeSubdomains: true,
		ContentTypeNoSniff:   true,
		XSSFilterBlock:       true,
	}

	s.router.Use(util.LoggingMiddleware)
	s.router.Use(util.RecoveryMiddleware)
	s.router.Use(corsMiddleware)
	s.router.Use(headers.Middleware())
	s.router.Use(httprate.LimitByIP(30, 1*time.Minute))

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/project_requirements", s.handleRequirements)
}
