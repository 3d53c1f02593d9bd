package config

// DB holds the database configuration settings.
type DB struct {
	// Engine selects the gorm driver: mysql, postgres or sqlite.
	Engine   string
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
