package server

// SessionServerConfig selects the user whose memos and shortcuts are served
type SessionServerConfig struct {
	UserID int32 `mapstructure:"user_id" yaml:"user_id"`
}

// FilterServerConfig holds defaults for the shortcut editor
type FilterServerConfig struct {
	DefaultDimension string `mapstructure:"default_dimension" yaml:"default_dimension"`
}
