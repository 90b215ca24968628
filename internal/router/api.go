package router

import (
	"github.com/gostays/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the versioned business routes under
// /api/v1.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	v1 := r.Group("/api/v1")

	registerEnquiryRoutes(v1, h)
	registerUserRoutes(v1, h)
	registerPropertyRoutes(v1, h)
	registerGeographyRoutes(v1, h)
	registerTrainingRoutes(v1, h)
	registerIssueRoutes(v1, h)
	registerExperienceRoutes(v1, h)
}

func registerEnquiryRoutes(g *echo.Group, h *handler.Handlers) {
	enquiries := g.Group("/enquiries")

	enquiries.POST("", h.Enquiries.Create())
	enquiries.GET("", h.Enquiries.List())
	enquiries.POST("/search", h.Enquiries.Search())
	enquiries.GET("/:id", h.Enquiries.Get())
	enquiries.PUT("/:id", h.Enquiries.Update())
	enquiries.PATCH("/:id/status", h.Enquiries.UpdateStatus())
	enquiries.DELETE("/:id", h.Enquiries.Delete())
}

func registerUserRoutes(g *echo.Group, h *handler.Handlers) {
	users := g.Group("/users")

	users.POST("", h.Users.Create())
	users.GET("", h.Users.List())
	users.GET("/search", h.Users.Search())
	users.GET("/:id", h.Users.Get())
	users.PUT("/:id", h.Users.Update())
	users.DELETE("/:id", h.Users.Delete())
	users.GET("/:id/host-profile", h.Users.HostProfile())
}

func registerPropertyRoutes(g *echo.Group, h *handler.Handlers) {
	types := g.Group("/property-types")
	types.POST("", h.Properties.CreateType())
	types.GET("", h.Properties.ListTypes())
	types.GET("/:id", h.Properties.GetType())
	types.PUT("/:id", h.Properties.UpdateType())
	types.DELETE("/:id", h.Properties.DeleteType())

	properties := g.Group("/properties")
	properties.POST("", h.Properties.Create())
	properties.GET("", h.Properties.List())
	properties.GET("/user/:user_id", h.Properties.GetByUser())
	properties.GET("/:id", h.Properties.Get())
	properties.PUT("/:id", h.Properties.Update())
	properties.PATCH("/:id/status", h.Properties.UpdateStatus())
	properties.DELETE("/:id", h.Properties.Delete())

	// Onboarding sub-resources hang off the property; updates and
	// deletes address the sub-resource row directly.
	properties.POST("/:id/rooms", h.Properties.AddRoom())
	properties.GET("/:id/rooms", h.Properties.ListRooms())
	g.PUT("/rooms/:id", h.Properties.UpdateRoom())
	g.DELETE("/rooms/:id", h.Properties.DeleteRoom())

	properties.POST("/:id/facilities", h.Properties.AddFacility())
	properties.GET("/:id/facilities", h.Properties.ListFacilities())
	g.PUT("/facilities/:id", h.Properties.UpdateFacility())
	g.DELETE("/facilities/:id", h.Properties.DeleteFacility())

	properties.POST("/:id/photos", h.Properties.AddPhoto())
	properties.GET("/:id/photos", h.Properties.ListPhotos())
	g.DELETE("/photos/:id", h.Properties.DeletePhoto())

	properties.GET("/:id/location", h.Properties.GetLocation())
	properties.PUT("/:id/location", h.Properties.PutLocation())

	properties.POST("/:id/availability", h.Properties.AddAvailability())
	properties.GET("/:id/availability", h.Properties.ListAvailability())
	g.DELETE("/availability/:id", h.Properties.DeleteAvailability())
}

func registerGeographyRoutes(g *echo.Group, h *handler.Handlers) {
	districts := g.Group("/districts")
	districts.POST("", h.Geography.CreateDistrict())
	districts.GET("", h.Geography.ListDistricts())
	districts.GET("/:id", h.Geography.GetDistrict())
	districts.PUT("/:id", h.Geography.UpdateDistrict())
	districts.DELETE("/:id", h.Geography.DeleteDistrict())
	districts.GET("/:district_id/panchayats", h.Geography.ListPanchayats())

	panchayats := g.Group("/panchayats")
	panchayats.POST("", h.Geography.CreatePanchayat())
	panchayats.GET("/:id", h.Geography.GetPanchayat())
	panchayats.PUT("/:id", h.Geography.UpdatePanchayat())
	panchayats.DELETE("/:id", h.Geography.DeletePanchayat())
}

func registerTrainingRoutes(g *echo.Group, h *handler.Handlers) {
	training := g.Group("/training")

	training.POST("/modules", h.Training.CreateModule())
	training.GET("/modules", h.Training.ListActiveModules())
	training.GET("/modules/:id", h.Training.GetModule())
	training.GET("/modules/:id/full", h.Training.GetModuleWithContents())
	training.PUT("/modules/:id", h.Training.UpdateModule())
	training.DELETE("/modules/:id", h.Training.DeleteModule())

	training.POST("/modules/:id/contents", h.Training.CreateContent())
	training.GET("/modules/:id/contents", h.Training.ListContents())
	training.GET("/contents/:id", h.Training.GetContent())
	training.DELETE("/contents/:id", h.Training.DeleteContent())
	training.POST("/contents/:id/quiz", h.Training.SubmitQuiz())

	training.GET("/progress/:user_id", h.Training.ListUserProgress())
	training.GET("/progress/:user_id/:module_id", h.Training.GetProgress())
	training.PATCH("/progress/:user_id/:module_id", h.Training.UpdateProgress())
}

func registerIssueRoutes(g *echo.Group, h *handler.Handlers) {
	issues := g.Group("/issues")

	issues.POST("", h.Issues.Create())
	issues.GET("", h.Issues.List())
	issues.GET("/:id", h.Issues.Get())
	issues.PUT("/:id", h.Issues.Update())
	issues.PATCH("/:id/status", h.Issues.UpdateStatus())
	issues.PATCH("/:id/assign", h.Issues.Assign())
	issues.PATCH("/:id/priority", h.Issues.UpdatePriority())
	issues.DELETE("/:id", h.Issues.Delete())

	issues.GET("/:id/activities", h.Issues.ListActivities())
	issues.POST("/:id/escalations", h.Issues.Escalate())
	issues.GET("/:id/escalations", h.Issues.ListEscalations())
}

func registerExperienceRoutes(g *echo.Group, h *handler.Handlers) {
	experiences := g.Group("/experiences")

	experiences.POST("", h.Experiences.Create())
	experiences.GET("", h.Experiences.List())
	experiences.GET("/:id", h.Experiences.Get())
	experiences.PUT("/:id", h.Experiences.Update())
	experiences.PATCH("/:id/status", h.Experiences.UpdateStatus())
	experiences.PATCH("/:id/approval", h.Experiences.UpdateApproval())
	experiences.DELETE("/:id", h.Experiences.Delete())
}
