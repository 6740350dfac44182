package routes

import (
	"net/http"
	"strings"

	"dynamic_shipping/internal/adapter/http/handlers"
	"dynamic_shipping/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathShipments = "/shipments"
	PathTracking  = "/tracking"
	PathProfile   = "/profile"
	PathPayments  = "/payments"
)

// requireIdentity resolves the caller from the X-User-ID header set by the
// edge proxy. Requests without it are rejected before reaching handlers.
func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing user identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(handlers.UserIDKey, userID)
		c.Next()
	}
}

func addShippingRoutes(
	rg *gin.RouterGroup,
	shipmentHandler *handlers.ShipmentHandler,
	quoteHandler *handlers.QuoteHandler,
	trackingHandler *handlers.TrackingHandler,
	profileHandler *handlers.ProfileHandler,
	paymentHandler *handlers.ShipmentPaymentHandler,
) {
	// Public endpoints: pricing and tracking need no identity.
	rg.POST(PathQuotes, quoteHandler.EstimateRate)
	rg.GET(PathTracking+"/:number", trackingHandler.Track)

	shipments := rg.Group(PathShipments, requireIdentity())
	{
		shipments.POST("", shipmentHandler.BookShipment)
		shipments.GET("", shipmentHandler.ListShipments)
		shipments.GET("/stats", shipmentHandler.GetShipmentStats)
		shipments.GET("/:id", shipmentHandler.GetShipment)
		shipments.PATCH("/:id", shipmentHandler.UpdateShipment)
		shipments.PATCH("/:id/status", shipmentHandler.UpdateShipmentStatus)
		shipments.DELETE("/:id", shipmentHandler.DeleteShipment)
	}

	profile := rg.Group(PathProfile, requireIdentity())
	{
		profile.GET("", profileHandler.GetProfile)
		profile.POST("", profileHandler.CreateProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}

	payments := rg.Group(PathPayments, requireIdentity())
	{
		payments.POST("/:shipment_id", paymentHandler.CreatePaymentByShipmentID)
		payments.GET("/:shipment_id", paymentHandler.GetPaymentByShipmentID)
	}
}
