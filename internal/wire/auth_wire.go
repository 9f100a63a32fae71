package wire

import (
	"realty-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	// Public routes (tanpa auth middleware)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/send-otp", authHandler.SendOTP)
		r.Post("/verify-otp", authHandler.VerifyOTP)
		r.Post("/complete-registration", authHandler.CompleteRegistration)
		r.Post("/token/refresh", authHandler.Refresh)

		// ==================== PROTECTED ROUTES ====================
		// Me - butuh identity token
		r.With(g.authenticate, g.identity).Get("/me", authHandler.Me)
	})
}
