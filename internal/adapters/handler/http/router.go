package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	electionHandler *ElectionHandler,
	voteHandler *VoteHandler,
	resultHandler *ResultHandler,
	partyHandler *PartyHandler,
	feedbackHandler *FeedbackHandler,
	inquiryHandler *InquiryHandler,
	jwtSecret []byte,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/google/callback", authHandler.GoogleCallback)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
	})

	// Inquiries are submitted by visitors without an account.
	r.Post("/inquiries", inquiryHandler.SubmitInquiry)

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", userHandler.GetMe)
			r.With(RequireAdmin).Get("/", userHandler.ListUsers)
			r.With(RequireAdmin).Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/elections", func(r chi.Router) {
			r.Get("/", electionHandler.ListElections)
			r.With(RequireAdmin).Post("/", electionHandler.CreateElection)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", electionHandler.GetElection)
				r.With(RequireAdmin).Delete("/", electionHandler.DeleteElection)

				r.Post("/votes", voteHandler.SubmitVote)
				r.Get("/votes/status", voteHandler.VoteStatus)
				r.Get("/results", resultHandler.GetResults)
				r.Get("/counts", resultHandler.GetCachedCounts)
			})
		})

		r.Route("/parties", func(r chi.Router) {
			r.Get("/", partyHandler.ListParties)
			r.With(RequireAdmin).Post("/", partyHandler.CreateParty)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", partyHandler.GetParty)
				r.With(RequireAdmin).Delete("/", partyHandler.DeleteParty)

				r.Route("/members", func(r chi.Router) {
					r.Get("/", partyHandler.ListMembers)
					r.With(RequireAdmin).Post("/", partyHandler.CreateMember)
					r.With(RequireAdmin).Delete("/{memberID}", partyHandler.DeleteMember)
				})
			})
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", feedbackHandler.SubmitFeedback)
			r.With(RequireAdmin).Get("/", feedbackHandler.ListFeedback)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/", inquiryHandler.ListInquiries)
			r.Get("/{id}", inquiryHandler.GetInquiry)
			r.Delete("/{id}", inquiryHandler.DeleteInquiry)
		})
	})

	return r
}
