package server

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/hrgovic/wedding-site/internal/config"
	"github.com/hrgovic/wedding-site/internal/modules/core"
	"github.com/hrgovic/wedding-site/internal/modules/photos"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp"
	rsvpcommands "github.com/hrgovic/wedding-site/internal/modules/rsvp/commands"
	rsvpdomain "github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"
	rsvpqueries "github.com/hrgovic/wedding-site/internal/modules/rsvp/queries"
	"github.com/hrgovic/wedding-site/internal/modules/session"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
	db     *sql.DB
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	directory := rsvpqueries.NewInvitationDirectory(db)

	emailClient := core.NewEmailClient(config.Email.Host, config.Email.Username, config.Email.Password)
	mailer := rsvpcommands.NewMailer(emailClient, config.Email.Sender, config.Email.NotifyAddress, config.Logger)

	getInvitationHandler := rsvpqueries.NewGetInvitationQueryHandler(directory)
	err = mediator.RegisterRequestHandler[rsvpqueries.GetInvitationQuery, *rsvpdomain.Invitation](
		getInvitationHandler,
	)
	if err != nil {
		return nil, err
	}

	submitRsvpHandler := rsvpcommands.NewSubmitRsvpCommandHandler(db, directory, mailer)
	err = mediator.RegisterRequestHandler[rsvpcommands.SubmitRsvpCommand, rsvpcommands.SubmitRsvpResponse](
		submitRsvpHandler,
	)
	if err != nil {
		return nil, err
	}

	createInvitationHandler := rsvpcommands.NewCreateInvitationCommandHandler(db)
	err = mediator.RegisterRequestHandler[rsvpcommands.CreateInvitationCommand, rsvpcommands.CreateInvitationResponse](
		createInvitationHandler,
	)
	if err != nil {
		return nil, err
	}

	// http

	renderer, err := core.NewRenderer(config.TemplatesPath, config.Logger)
	if err != nil {
		return nil, err
	}

	sessionStore := session.NewStore(db, config.SessionSecret, config.IsProduction())
	gate := rsvp.NewGate(config.Passcode, directory)

	rsvpHandler := rsvp.NewHTTPHandler(gate, sessionStore, renderer, config.Logger)
	photosHandler := photos.NewHTTPHandler(gate, sessionStore, renderer, config.PhotosURL, config.Logger)

	r := chi.NewRouter()
	r.Use(core.CorrelationIDHTTPMiddleware)
	r.Use(session.Middleware(sessionStore, config.Logger))

	staticPage := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			renderer.Render(w, name, nil)
		}
	}

	r.Get("/", staticPage("index.html"))
	r.Get("/the-wedding", staticPage("the-wedding.html"))
	r.Get("/travel-and-stay", staticPage("travel-and-stay.html"))

	r.Get("/rsvp", rsvpHandler.HandleGetRsvp)
	r.Post("/rsvp", rsvpHandler.HandlePostRsvp)
	r.Get("/rsvp/{code}", rsvpHandler.HandleRedeemCode)

	r.Get("/photos", photosHandler.HandleGetPhotos)
	r.Post("/photos", photosHandler.HandlePostPhotos)
	r.Get("/photos/qr.png", photosHandler.HandleQRImage)

	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(config.PublicPath))))

	server := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
	}

	return &HTTPServer{server: server, db: db}, nil
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	if err := s.server.Close(); err != nil {
		return err
	}

	return s.db.Close()
}
