package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/profile", handler.AuthRequired, handler.UpdateProfile)

	api.Get("/regions", handler.GetRegions)

	session := api.Group("/session", handler.AuthRequired)
	session.Get("", handler.GetSession)
	session.Post("/date/:date", handler.LoadSessionDate)
	session.Put("/draft", handler.UpdateDraft)
	session.Post("/toggle", handler.ToggleRegion)
	session.Delete("/selection/:region", handler.RemoveRegion)
	session.Post("/reset", handler.ResetSelection)

	survey := api.Group("/survey", handler.AuthRequired)
	survey.Post("/start", handler.StartSurvey)
	survey.Get("/current", handler.CurrentSurveyStep)
	survey.Post("/submit", handler.SubmitSurveyStep)
	survey.Post("/finish", handler.FinishSurvey)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("", handler.GetReportHistory)
	reports.Get("/:date", handler.GetReportByDate)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/overview", handler.GetDashboardOverview)
}
