package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	// Format is the output encoding (json, console).
	Format string `mapstructure:"format" default:"console" validate:"omitempty,oneof=json console"`
	// Output is a zap sink: stderr, stdout or a file path.
	Output string `mapstructure:"output" default:"stderr"`
}
