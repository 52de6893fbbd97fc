// Package constants defines shared constants used throughout the MRU application.
package constants

// Directory and file names
const (
	AppDirName     = "mru"
	StoreFileName  = "files"
	ConfigFileName = "config.yaml"
	LogFileName    = "mru.log"
)

// Store limits
const (
	DefaultMaxEntries = 10000 // Oldest entries are evicted past this
	PreviewEntries    = 9     // Entries shown by -s and by an empty search
	Ellipsis          = "..."
)

// Environment variables
const (
	EnvStoreFile = "MRU_FILE"
	EnvMaxSize   = "MRU_MAX"
	EnvDebug     = "MRU_DEBUG"
	EnvEditor    = "EDITOR"
	EnvVisual    = "VISUAL"
)

// DefaultEditor is used when neither config nor environment names one.
const DefaultEditor = "vim"

// Display limits
const (
	MaxDisplayPathLen = 96
	MinDisplayPathLen = 8
)

// TruncatePath shortens a path for display by keeping its tail.
// The leading part is replaced with an ellipsis so the file name stays visible.
func TruncatePath(path string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= len(Ellipsis) {
		return string(runes[len(runes)-maxLen:])
	}
	keep := maxLen - len(Ellipsis)
	return Ellipsis + string(runes[len(runes)-keep:])
}
