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
	FieldDate       = "date"
	FieldTeam       = "team"
	FieldTeamID     = "team_id"
	FieldGamePk     = "game_pk"
	FieldState      = "state"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
