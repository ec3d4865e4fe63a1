package logging

// Config is the "logging" section of svcman.yml.
type Config struct {
	// Level is the minimum level written: debug, info, warn or error.
	// SVCMAN_LOG_LEVEL overrides it.
	Level string `yaml:"level"`

	// ReportCaller adds file, line and function to each entry.
	// SVCMAN_LOG_CALLER=true enables it.
	ReportCaller bool `yaml:"report_caller"`

	File FileSinkConfig `yaml:"file"`

	Format FormatConfig `yaml:"format"`
}

// FileSinkConfig configures the log file.
type FileSinkConfig struct {
	// Disabled turns the default file sink off.
	Disabled bool `yaml:"disabled"`
	// Path overrides the default $XDG_STATE_HOME/svcman/logs/<component>-<date>.log.
	Path string `yaml:"path"`
}

// FormatConfig controls the log line layout.
type FormatConfig struct {
	// Preset is "default", "simple" or "json".
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
	// StructuredToStderr is "auto" (only when stderr is not a terminal),
	// "always" or "never".
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
