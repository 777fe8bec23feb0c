package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
