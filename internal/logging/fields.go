package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldTeam       = "team"
	FieldSeason     = "season"
	FieldStrategy   = "strategy"
	FieldCacheKey   = "cache_key"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
