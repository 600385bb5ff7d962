package config

// Color modes accepted in config files and on the command line.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds player settings loaded from .quizgame/config.yml.
type Config struct {
	Version       int    `yaml:"version" validate:"required,eq=1"`
	QuestionsFile string `yaml:"questions_file,omitempty"`
	DefaultCount  int    `yaml:"default_count" validate:"gte=1,lte=1000"`
	Shuffle       *bool  `yaml:"shuffle,omitempty"`
	Color         string `yaml:"color" validate:"oneof=auto always never"`

	// BaseDir is the directory relative paths are resolved against.
	BaseDir string `yaml:"-" validate:"-"`
}

// ShuffleEnabled reports whether questions should be reordered.
func (cfg Config) ShuffleEnabled() bool {
	return cfg.Shuffle == nil || *cfg.Shuffle
}
