package consts

// AuthorizationKey Authorization header key
const AuthorizationKey string = "Authorization"

// BearerKey Bearer token prefix
const BearerKey string = "Bearer "

// ContentTypeKey Content-Type header key
const ContentTypeKey string = "Content-Type"

// ContentTypeJSON json content type
const ContentTypeJSON string = "application/json"

// RequestIDKey request id header
const RequestIDKey string = "X-Request-Id"

// TokenKey persisted auth token key
const TokenKey string = "auth_token"

// UserKey persisted user profile key
const UserKey string = "user_info"
