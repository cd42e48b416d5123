// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wellkart/internal/delivery/http/middleware"
	"wellkart/internal/delivery/http/router/handler"
	"wellkart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SessionHandler *handler.SessionHandler
	ProfileHandler *handler.ProfileHandler
	AddressHandler *handler.AddressHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	CouponHandler  *handler.CouponHandler
	PaymentHandler *handler.PaymentHandler
	ClinicHandler  *handler.ClinicHandler
	LeadHandler    *handler.LeadHandler
	ReviewHandler  *handler.ReviewHandler
	SettingHandler *handler.SettingHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register/customer", p.UserHandler.RegisterCustomer)
		authGroup.POST("/register/doctor", p.UserHandler.RegisterDoctor)
		authGroup.POST("/register/influencer", p.UserHandler.RegisterInfluencer)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/logout", p.UserHandler.Logout)
		authGroup.GET("/check", p.UserHandler.CheckAuth, auth.Authenticate)

		// Admin accounts are minted by super admins only.
		authGroup.POST("/register/admin", p.UserHandler.RegisterAdmin,
			auth.Authenticate, auth.RequireRoles(entity.RoleSuperAdmin))
	}

	// Public storefront routes
	v1.GET("/products", p.ProductHandler.ListProducts)
	v1.GET("/products/slug/:slug", p.ProductHandler.GetProductBySlug)
	v1.GET("/products/:id", p.ProductHandler.GetProduct)
	v1.GET("/products/:id/reviews", p.ReviewHandler.ListProductReviews)
	v1.POST("/coupons/validate", p.CouponHandler.ValidateCoupon)
	v1.POST("/leads", p.LeadHandler.CaptureLead)

	// Routes for any authenticated user
	profileGroup := v1.Group("/profile", auth.Authenticate)
	{
		profileGroup.GET("", p.ProfileHandler.GetProfile)
		profileGroup.PATCH("", p.ProfileHandler.UpdateProfile)
		profileGroup.PATCH("/doctor", p.ProfileHandler.UpdateDoctorProfile,
			auth.RequireRoles(entity.RoleDoctor))
	}

	sessionGroup := v1.Group("/sessions", auth.Authenticate)
	{
		sessionGroup.GET("", p.SessionHandler.GetActiveSessions)
		sessionGroup.DELETE("/:sessionId", p.SessionHandler.RevokeSession)
		sessionGroup.DELETE("", p.SessionHandler.RevokeAllSessions)
	}

	addressGroup := v1.Group("/addresses", auth.Authenticate)
	{
		addressGroup.GET("", p.AddressHandler.ListAddresses)
		addressGroup.POST("", p.AddressHandler.CreateAddress)
		addressGroup.PUT("/:addressId", p.AddressHandler.UpdateAddress)
		addressGroup.DELETE("/:addressId", p.AddressHandler.DeleteAddress)
		addressGroup.PATCH("/user/:userId/:addressId/default", p.AddressHandler.SetDefaultAddress)
	}

	orderGroup := v1.Group("/orders", auth.Authenticate)
	{
		orderGroup.POST("", p.OrderHandler.Checkout)
		orderGroup.GET("/mine", p.OrderHandler.ListMyOrders)
	}

	paymentGroup := v1.Group("/payments", auth.Authenticate)
	{
		paymentGroup.POST("/start", p.PaymentHandler.StartPayment)
		paymentGroup.POST("/verify", p.PaymentHandler.VerifyPayment)
	}

	v1.POST("/reviews", p.ReviewHandler.SubmitReview, auth.Authenticate)

	// Doctor portal
	clinicGroup := v1.Group("/clinic", auth.Authenticate, auth.RequireRoles(entity.RoleDoctor))
	{
		clinicGroup.GET("/patients", p.ClinicHandler.ListPatients)
		clinicGroup.POST("/patients", p.ClinicHandler.CreatePatient)
		clinicGroup.GET("/patients/:id", p.ClinicHandler.GetPatient)
		clinicGroup.PUT("/patients/:id", p.ClinicHandler.UpdatePatient)
		clinicGroup.DELETE("/patients/:id", p.ClinicHandler.DeletePatient)
		clinicGroup.GET("/patients/:id/prescriptions", p.ClinicHandler.ListPrescriptionsByPatient)

		clinicGroup.GET("/appointments", p.ClinicHandler.ListAppointments)
		clinicGroup.POST("/appointments", p.ClinicHandler.BookAppointment)
		clinicGroup.GET("/appointments/:id", p.ClinicHandler.GetAppointment)
		clinicGroup.PUT("/appointments/:id", p.ClinicHandler.RescheduleAppointment)
		clinicGroup.PATCH("/appointments/:id/status", p.ClinicHandler.SetAppointmentStatus)
		clinicGroup.DELETE("/appointments/:id", p.ClinicHandler.DeleteAppointment)

		clinicGroup.POST("/prescriptions", p.ClinicHandler.IssuePrescription)
		clinicGroup.GET("/prescriptions/:id", p.ClinicHandler.GetPrescription)
		clinicGroup.PUT("/prescriptions/:id", p.ClinicHandler.UpdatePrescription)
		clinicGroup.DELETE("/prescriptions/:id", p.ClinicHandler.DeletePrescription)
	}

	// Influencer portal
	influencerGroup := v1.Group("/influencer", auth.Authenticate, auth.RequireRoles(entity.RoleInfluencer))
	{
		influencerGroup.GET("/earnings", p.OrderHandler.GetEarnings)
		influencerGroup.GET("/qr", p.OrderHandler.GetReferralQR)
	}

	// Admin dashboard
	adminGroup := v1.Group("/admin", auth.Authenticate, auth.RequireAdmin())
	{
		adminGroup.GET("/users", p.ProfileHandler.ListUsers)
		adminGroup.GET("/users/:id", p.ProfileHandler.GetUser)
		adminGroup.PATCH("/users/:id/status", p.ProfileHandler.SetUserStatus)

		adminGroup.POST("/products", p.ProductHandler.CreateProduct)
		adminGroup.PUT("/products/:id", p.ProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", p.ProductHandler.DeleteProduct)
		adminGroup.GET("/products/count", p.ProductHandler.CountProducts)

		adminGroup.GET("/orders", p.OrderHandler.ListOrders)
		adminGroup.GET("/orders/count", p.OrderHandler.CountOrders)
		adminGroup.GET("/orders/:id", p.OrderHandler.GetOrder)
		adminGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateOrderStatus)
		adminGroup.DELETE("/orders/:id", p.OrderHandler.DeleteOrder)

		adminGroup.GET("/coupons", p.CouponHandler.ListCoupons)
		adminGroup.POST("/coupons", p.CouponHandler.CreateCoupon)
		adminGroup.GET("/coupons/:id", p.CouponHandler.GetCoupon)
		adminGroup.PUT("/coupons/:id", p.CouponHandler.UpdateCoupon)
		adminGroup.DELETE("/coupons/:id", p.CouponHandler.DeleteCoupon)

		adminGroup.GET("/leads", p.LeadHandler.ListLeads)
		adminGroup.GET("/leads/:id", p.LeadHandler.GetLead)
		adminGroup.PATCH("/leads/:id/status", p.LeadHandler.SetLeadStatus)
		adminGroup.DELETE("/leads/:id", p.LeadHandler.DeleteLead)

		adminGroup.GET("/reviews", p.ReviewHandler.ListReviews)
		adminGroup.GET("/products/:id/reviews", p.ReviewHandler.ListProductReviews)
		adminGroup.PATCH("/reviews/:id", p.ReviewHandler.ModerateReview)
		adminGroup.DELETE("/reviews/:id", p.ReviewHandler.DeleteReview)

		adminGroup.GET("/settings/:key", p.SettingHandler.GetSetting)
		adminGroup.PUT("/settings/:key", p.SettingHandler.SaveSetting)

		adminGroup.POST("/uploads/image", p.UploadHandler.UploadImage)
		adminGroup.POST("/uploads/images", p.UploadHandler.UploadImages)
		adminGroup.DELETE("/uploads", p.UploadHandler.DeleteImage)
	}
}
