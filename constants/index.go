package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_USER  = "USER"
)

const (
	SESSION_SCHEDULED = "SCHEDULED"
	SESSION_FINISHED  = "FINISHED"
)

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Unable to create record"
	ERROR_EDIT                 = "Unable to update record"
	ERROR_DELETE               = "Unable to delete record"
	ERROR_PARSE_DATA_TO_LOCALS = "Unable to read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	MISSING_LOGIN_INPUT   = "Email and password are required"
	INVALID_EMAIL         = "Email does not exist"
	INVALID_PASSWORD      = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE    = "Account is deactivated"
	CAN_NOT_HASH_PASSWORD = "Unable to hash password"
	NOT_ADMIN             = "Admin permission required"
)
