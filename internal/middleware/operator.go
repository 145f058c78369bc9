package middleware

import "github.com/gin-gonic/gin"

// operatorKey is the key used to store the acting operator's ID in the Gin context.
const operatorKey = contextKey("operator")

// DefaultOperator is recorded in audit fields when no operator header is present.
const DefaultOperator = "admin"

// OperatorContext resolves the acting operator from the X-Operator header.
// Session handling lives outside this service; the header identifies who is
// driving the terminal for audit purposes.
func OperatorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := c.GetHeader("X-Operator")
		if operator == "" {
			operator = DefaultOperator
		}
		c.Set(string(operatorKey), operator)
		c.Next()
	}
}

// GetOperatorFromContext retrieves the acting operator ID from the Gin context.
func GetOperatorFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(operatorKey)); exists {
		if operator, ok := v.(string); ok && operator != "" {
			return operator
		}
	}
	return DefaultOperator
}
