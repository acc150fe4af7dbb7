package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/OleksaDid/simple-debts/docs"
	authhandlers "github.com/OleksaDid/simple-debts/internal/handlers/auth"
	debthandlers "github.com/OleksaDid/simple-debts/internal/handlers/debts"
	operationhandlers "github.com/OleksaDid/simple-debts/internal/handlers/operations"
	"github.com/OleksaDid/simple-debts/internal/service"
	"github.com/OleksaDid/simple-debts/pkg/auth"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DebtHandler interface {
	GetAllDebts(w http.ResponseWriter, r *http.Request)
	GetDebt(w http.ResponseWriter, r *http.Request)
	CreateMultipleDebt(w http.ResponseWriter, r *http.Request)
	CreateSingleDebt(w http.ResponseWriter, r *http.Request)
	AcceptCreation(w http.ResponseWriter, r *http.Request)
	DeclineCreation(w http.ResponseWriter, r *http.Request)
	DeleteDebt(w http.ResponseWriter, r *http.Request)
	AcceptUserDeleted(w http.ResponseWriter, r *http.Request)
	ConnectUser(w http.ResponseWriter, r *http.Request)
	AcceptConnection(w http.ResponseWriter, r *http.Request)
	DeclineConnection(w http.ResponseWriter, r *http.Request)
}

type OperationHandler interface {
	CreateOperation(w http.ResponseWriter, r *http.Request)
	AcceptOperation(w http.ResponseWriter, r *http.Request)
	DeclineOperation(w http.ResponseWriter, r *http.Request)
	DeleteOperation(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	DebtHandler      DebtHandler
	OperationHandler OperationHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		DebtHandler:      debthandlers.New(s.DebtService, s.ViewService),
		OperationHandler: operationhandlers.New(s.OperationService, s.ViewService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		requestMetrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/debts", func(r chi.Router) {
				r.Get("/", h.DebtHandler.GetAllDebts)
				r.Post("/multiple", h.DebtHandler.CreateMultipleDebt)
				r.Post("/single", h.DebtHandler.CreateSingleDebt)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.DebtHandler.GetDebt)
					r.Delete("/", h.DebtHandler.DeleteDebt)
					r.Post("/creation", h.DebtHandler.AcceptCreation)
					r.Delete("/creation", h.DebtHandler.DeclineCreation)
					r.Post("/user-deleted", h.DebtHandler.AcceptUserDeleted)
					r.Post("/connect", h.DebtHandler.ConnectUser)
					r.Post("/connect/accept", h.DebtHandler.AcceptConnection)
					r.Delete("/connect", h.DebtHandler.DeclineConnection)
				})
			})
			r.Route("/operations", func(r chi.Router) {
				r.Post("/", h.OperationHandler.CreateOperation)
				r.Post("/{id}/accept", h.OperationHandler.AcceptOperation)
				r.Post("/{id}/decline", h.OperationHandler.DeclineOperation)
				r.Delete("/{id}", h.OperationHandler.DeleteOperation)
			})
		})
	})

	return r
}

// requestMetrics labels requests by route pattern so ids don't blow up cardinality.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordHTTPRequest(r.Method, route, status, time.Since(start))
	})
}
