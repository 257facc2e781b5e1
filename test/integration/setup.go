package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handlerhttp "github.com/openelect/evote/internal/adapters/handler/http"
	pgrepo "github.com/openelect/evote/internal/adapters/repository/postgres"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
	"github.com/openelect/evote/internal/core/services"
)

const (
	testJWTSecret   = "test-secret"
	testRedirectURL = "https://example.com/redirect"
)

type TestApp struct {
	Server   *httptest.Server
	Client   *http.Client
	DB       *sql.DB
	Snapshot ports.SnapshotService
	Teardown func()
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	return setupTestAppWithVerifier(t, nil)
}

func setupTestAppWithVerifier(t *testing.T, verifier ports.TokenVerifier) *TestApp {
	t.Helper()
	ctx := context.Background()

	t.Setenv("JWT_SECRET", testJWTSecret)

	pgContainer, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, applyMigrations(db))

	userRepo := pgrepo.NewUserRepository(db)
	authRepo := pgrepo.NewAuthRepository(db)
	electionRepo := pgrepo.NewElectionRepository(db)
	ballotRepo := pgrepo.NewBallotRepository(db)
	partyRepo := pgrepo.NewPartyRepository(db)
	memberRepo := pgrepo.NewMemberRepository(db)
	feedbackRepo := pgrepo.NewFeedbackRepository(db)
	voteCountRepo := pgrepo.NewVoteCountRepository(db)
	inquiryRepo := pgrepo.NewInquiryRepository(db)

	authService := services.NewAuthService(userRepo, authRepo, verifier)
	userService := services.NewUserService(userRepo)
	electionService := services.NewElectionService(electionRepo)
	voteService := services.NewVoteService(electionRepo, ballotRepo, userRepo)
	resultService := services.NewResultService(electionRepo, ballotRepo, partyRepo, memberRepo, voteCountRepo)
	snapshotService := services.NewSnapshotService(electionRepo, voteCountRepo)
	partyService := services.NewPartyService(partyRepo)
	memberService := services.NewMemberService(partyRepo, memberRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	inquiryService := services.NewInquiryService(inquiryRepo)

	handler := handlerhttp.NewHandler(
		handlerhttp.NewAuthHandler(authService, testRedirectURL, "", http.SameSiteLaxMode),
		handlerhttp.NewUserHandler(userService),
		handlerhttp.NewElectionHandler(electionService),
		handlerhttp.NewVoteHandler(voteService),
		handlerhttp.NewResultHandler(resultService),
		handlerhttp.NewPartyHandler(partyService, memberService),
		handlerhttp.NewFeedbackHandler(feedbackService),
		handlerhttp.NewInquiryHandler(inquiryService),
		[]byte(testJWTSecret),
	)

	server := httptest.NewServer(handler)

	return &TestApp{
		Server:   server,
		Client:   server.Client(),
		DB:       db,
		Snapshot: snapshotService,
		Teardown: func() {
			server.Close()
			db.Close()
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		},
	}
}

func createUserAndToken(t *testing.T, db *sql.DB) (uuid.UUID, string) {
	t.Helper()
	return createUserWithRole(t, db, "voter")
}

func createAdminAndToken(t *testing.T, db *sql.DB) (uuid.UUID, string) {
	t.Helper()
	return createUserWithRole(t, db, "admin")
}

func createUserWithRole(t *testing.T, db *sql.DB, role string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	name := fmt.Sprintf("User %s", userID)
	_, err := db.Exec("INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)", userID, email, name, role)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signedToken
}

func authedRequest(t *testing.T, method, url, token string, body *strings.Reader) *http.Request {
	t.Helper()

	if body == nil {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	return req
}

func doJSON(t *testing.T, app *TestApp, method, path, token string, payload interface{}, out interface{}) *http.Response {
	t.Helper()

	var body *strings.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = strings.NewReader(string(b))
	}

	req := authedRequest(t, method, app.Server.URL+path, token, body)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)

	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// createElection builds a party, one member per candidate and an election
// with the given posts through the admin API. Each inner slice entry becomes
// one candidate of that post.
func createElection(t *testing.T, app *TestApp, adminToken string, start, end time.Time, candidatesPerPost ...int) domain.Election {
	t.Helper()

	var party domain.Party
	resp := doJSON(t, app, "POST", "/api/parties", adminToken, map[string]interface{}{
		"name":         fmt.Sprintf("Party %s", uuid.New()),
		"abbreviation": "PP",
	}, &party)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	posts := make([]map[string]interface{}, 0, len(candidatesPerPost))
	for i, n := range candidatesPerPost {
		candidates := make([]map[string]interface{}, 0, n)
		for j := 0; j < n; j++ {
			var member domain.PartyMember
			resp := doJSON(t, app, "POST", fmt.Sprintf("/api/parties/%s/members", party.ID), adminToken, map[string]interface{}{
				"name": fmt.Sprintf("Member %d-%d", i, j),
			}, &member)
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			candidates = append(candidates, map[string]interface{}{
				"party_id":  party.ID,
				"member_id": member.ID,
			})
		}
		posts = append(posts, map[string]interface{}{
			"name":       fmt.Sprintf("Post %d", i),
			"candidates": candidates,
		})
	}

	var election domain.Election
	resp = doJSON(t, app, "POST", "/api/elections", adminToken, map[string]interface{}{
		"title":      fmt.Sprintf("Election %s", uuid.New()),
		"start_date": start,
		"end_date":   end,
		"posts":      posts,
	}, &election)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return election
}

func submitBallot(t *testing.T, app *TestApp, token string, election domain.Election, picks map[int]int) *http.Response {
	t.Helper()

	selections := make([]map[string]interface{}, 0, len(picks))
	for postIdx, candIdx := range picks {
		selections = append(selections, map[string]interface{}{
			"post_id":      election.Posts[postIdx].ID,
			"candidate_id": election.Posts[postIdx].Candidates[candIdx].ID,
		})
	}

	return doJSON(t, app, "POST", fmt.Sprintf("/api/elections/%s/votes", election.ID), token, map[string]interface{}{
		"selections": selections,
	}, nil)
}
