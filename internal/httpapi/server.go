// Package httpapi exposes the learning platform over HTTP with gin.
package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lunara-health/lunara/internal/attempt"
	"github.com/lunara-health/lunara/internal/auth"
	"github.com/lunara-health/lunara/internal/progress"
	"github.com/lunara-health/lunara/internal/quizgen"
	"github.com/lunara-health/lunara/internal/store"
)

// defaultQuizTTL is how long a generated quiz stays retrievable.
const defaultQuizTTL = 3600 * time.Second

// Server wires the domain services behind the HTTP routes.
type Server struct {
	users     store.UserRepo
	quizzes   store.QuizRepo
	progress  *progress.Service
	attempts  *attempt.Service
	generator quizgen.Generator
	tokens    *auth.TokenIssuer
	quizTTL   time.Duration
}

// NewServer assembles the API server from its dependencies.
func NewServer(
	users store.UserRepo,
	quizzes store.QuizRepo,
	prog *progress.Service,
	attempts *attempt.Service,
	generator quizgen.Generator,
	tokens *auth.TokenIssuer,
) *Server {
	return &Server{
		users:     users,
		quizzes:   quizzes,
		progress:  prog,
		attempts:  attempts,
		generator: generator,
		tokens:    tokens,
		quizTTL:   quizTTLFromEnv(),
	}
}

// quizTTLFromEnv reads LUNARA_QUIZ_TTL (seconds), falling back to the default.
func quizTTLFromEnv() time.Duration {
	raw := os.Getenv("LUNARA_QUIZ_TTL")
	if raw == "" {
		return defaultQuizTTL
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		fmt.Fprintf(os.Stderr, "warning: invalid LUNARA_QUIZ_TTL %q, using default\n", raw)
		return defaultQuizTTL
	}
	return time.Duration(secs) * time.Second
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api/v1")
	{
		api.POST("/register", s.register)
		api.POST("/login", s.login)
		api.GET("/tags", s.listTags)

		authed := api.Group("", s.requireAuth)
		{
			authed.GET("/me", s.getMe)
			authed.PUT("/me", s.updateMe)
			authed.GET("/me/progress", s.getProgress)
			authed.GET("/me/stats", s.getStats)
			authed.GET("/me/attempts", s.listAttempts)

			authed.GET("/content", s.listContent)

			authed.POST("/quizzes", s.generateQuiz)
			authed.GET("/quizzes/:id", s.getQuiz)

			authed.POST("/attempts", s.startAttempt)
			authed.GET("/attempts/:id", s.getAttempt)
			authed.POST("/attempts/:id/answers", s.submitAnswer)
			authed.POST("/attempts/:id/complete", s.completeAttempt)
		}
	}

	return r
}

// corsConfig allows configured origins plus localhost for development.
// LUNARA_CORS_ORIGINS is a comma-separated origin list; unset means only
// localhost.
func corsConfig() cors.Config {
	var allowed []string
	if env := os.Getenv("LUNARA_CORS_ORIGINS"); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowed = append(allowed, o)
			}
		}
	}

	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			for _, o := range allowed {
				if origin == o {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
