package handlers

import (
	"net/http"

	"dynamic_shipping/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated caller id. The
// identity middleware sets it from the X-User-ID header.
const UserIDKey = "user_id"

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing user identity", http.StatusUnauthorized)

// currentUserID returns the caller id or writes a 401 and returns false.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return "", false
	}
	return userID, true
}
