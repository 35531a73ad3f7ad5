package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the acting user's ID in the Gin context.
const actorIDKey = contextKey("actorID")

// ActorIDHeader is the header upstream gateways use to propagate the acting
// user's identity.
const ActorIDHeader = "X-Actor-ID"

// ActorIdentity creates a Gin middleware that copies the acting user ID from
// the request header into the context. Requests without the header fall back
// to "system" so audit fields are never empty.
func ActorIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorIDHeader)
		if actorID == "" {
			actorID = "system"
		}
		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok {
		return "", false
	}

	return actorID, true
}
