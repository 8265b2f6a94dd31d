package ports

/*
Settings holds the user defaults read from the drills configuration file.
Zero values mean "not configured" and are replaced by built-in defaults.
*/
type Settings struct {
	Method      string `yaml:"method"`
	LogLevel    string `yaml:"log_level"`
	RecordsFile string `yaml:"records_file"`
}

/*
SettingsProvider defines the interface for reading user settings.
This is a driven port, typically implemented by a repository adapter
backed by a file in the user's home directory.
*/
type SettingsProvider interface {
	GetSettings() (Settings, error)
	GetSettingsPath() string
}
