package middleware

import "github.com/gin-gonic/gin"

// operatorKey is the key used to store the operator identity in the Gin context.
// Using a custom type prevents collisions.
const operatorKey = contextKey("operatorID")

// operatorHeader carries the free-form operator identity supplied by the
// client shell with each request.
const operatorHeader = "X-Operator-ID"

// OperatorMiddleware copies the operator identity header into the Gin context
// so handlers can attribute writes without re-reading headers.
func OperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if operator := c.GetHeader(operatorHeader); operator != "" {
			c.Set(string(operatorKey), operator)
		}
		c.Next()
	}
}

// GetOperatorFromContext retrieves the operator identity from the Gin context.
// It returns the operator ID and a boolean indicating if it was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	operatorVal, exists := c.Get(string(operatorKey))
	if !exists {
		return "", false
	}

	operatorID, ok := operatorVal.(string)
	if !ok || operatorID == "" {
		return "", false
	}

	return operatorID, true
}
