package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/openelect/evote/internal/adapters/handler/http"
	"github.com/openelect/evote/internal/adapters/oauth/google"
	"github.com/openelect/evote/internal/adapters/repository/postgres"
	"github.com/openelect/evote/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	electionRepo := postgres.NewElectionRepository(db)
	ballotRepo := postgres.NewBallotRepository(db)
	partyRepo := postgres.NewPartyRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	voteCountRepo := postgres.NewVoteCountRepository(db)
	inquiryRepo := postgres.NewInquiryRepository(db)

	authService := services.NewAuthService(userRepo, authRepo, google.NewVerifier())
	userService := services.NewUserService(userRepo)
	electionService := services.NewElectionService(electionRepo)
	voteService := services.NewVoteService(electionRepo, ballotRepo, userRepo)
	resultService := services.NewResultService(electionRepo, ballotRepo, partyRepo, memberRepo, voteCountRepo)
	partyService := services.NewPartyService(partyRepo)
	memberService := services.NewMemberService(partyRepo, memberRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	inquiryService := services.NewInquiryService(inquiryRepo)

	authHandler := http.NewAuthHandler(authService, os.Getenv("LOGIN_REDIRECT_URL"), os.Getenv("COOKIE_DOMAIN"), stdhttp.SameSiteLaxMode)
	userHandler := http.NewUserHandler(userService)
	electionHandler := http.NewElectionHandler(electionService)
	voteHandler := http.NewVoteHandler(voteService)
	resultHandler := http.NewResultHandler(resultService)
	partyHandler := http.NewPartyHandler(partyService, memberService)
	feedbackHandler := http.NewFeedbackHandler(feedbackService)
	inquiryHandler := http.NewInquiryHandler(inquiryService)

	handler := http.NewHandler(
		authHandler,
		userHandler,
		electionHandler,
		voteHandler,
		resultHandler,
		partyHandler,
		feedbackHandler,
		inquiryHandler,
		[]byte(os.Getenv("JWT_SECRET")),
	)
	server := &stdhttp.Server{Addr: "0.0.0.0:8080", Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
