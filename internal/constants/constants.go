package constants

const (
	AppName            = "mealweek"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/mealweek/mealweek.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// WeekLabelFormat is the month-day format used in the week header ("Jan 2")
	WeekLabelFormat = "Jan 2"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mealweek-"
	BackupFileSuffix = ".db"
)

// SeedMeals is the starter catalog inserted when a fresh database is initialized.
var SeedMeals = []string{
	"Oatmeal with Berries",
	"Scrambled Eggs",
	"Avocado Toast",
	"Grilled Chicken Salad",
	"Turkey Sandwich",
	"Pasta Primavera",
	"Salmon with Vegetables",
	"Stir Fry",
}
