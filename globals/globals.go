package globals

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const EmailKey ContextKey = "email"
const UsernameKey ContextKey = "username"
const RequestIDKey ContextKey = "requestId"
