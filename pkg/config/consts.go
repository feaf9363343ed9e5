package config

// EnvPrefix is the envconfig prefix shared by all INVENTORY_* variables.
const EnvPrefix = "inventory"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "INVENTORY_APP_ENV"
	EnvPort   = "INVENTORY_APP_PORT"

	EnvDBDSN  = "INVENTORY_DB_DSN"
	EnvDBHost = "INVENTORY_DB_HOST"
	EnvDBUser = "INVENTORY_DB_USER"
	EnvDBName = "INVENTORY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
