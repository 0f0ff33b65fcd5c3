package rules

// DefaultFallbackCategory is the category used for extensions with no
// rule, including extensionless files.
const DefaultFallbackCategory = "others"

// defaultRules is the built-in extension → category mapping, used when
// no rules file is given. Keys are already normalized.
var defaultRules = map[string]string{
	// Documents
	".pdf":  "docs",
	".doc":  "docs",
	".docx": "docs",
	".odt":  "docs",
	".txt":  "docs",
	".md":   "docs",
	".rtf":  "docs",
	".xls":  "sheets",
	".xlsx": "sheets",
	".csv":  "sheets",
	".ppt":  "slides",
	".pptx": "slides",

	// Images
	".jpg":  "images",
	".jpeg": "images",
	".png":  "images",
	".gif":  "images",
	".tif":  "images",
	".tiff": "images",
	".bmp":  "images",
	".webp": "images",

	// Audio / Video
	".mp3":  "audio",
	".wav":  "audio",
	".flac": "audio",
	".m4a":  "audio",
	".mp4":  "video",
	".mov":  "video",
	".mkv":  "video",
	".avi":  "video",

	// Archives
	".zip": "archives",
	".rar": "archives",
	".7z":  "archives",
	".tar": "archives",
	".gz":  "archives",

	// Code / Data
	".py":    "code",
	".ipynb": "code",
	".js":    "code",
	".ts":    "code",
	".json":  "data",
	".yml":   "config",
	".yaml":  "config",
	".toml":  "config",
}

// Defaults returns the built-in rule table.
func Defaults() Table {
	return NewTable(defaultRules)
}
