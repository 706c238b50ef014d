package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InviteCodeMiddleware gates signup behind an X-Invite-Code header.
// An empty code leaves signup open.
func InviteCodeMiddleware(inviteCode string) gin.HandlerFunc {
	if inviteCode == "" {
		log.Println("[WARN] SIGNUP_INVITE_CODE is not set, signup is open to everyone")
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.GetHeader("X-Invite-Code") != inviteCode {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}
