package discover

// DefaultIgnorePatterns approximates the industry-standard ignore list
// applied when ignore.useDefaultPatterns is true (spec.md §4.2): version
// control metadata, dependency/build output directories, lock files, and
// common binary/media extensions.
var DefaultIgnorePatterns = []string{
	".git/**",
	".svn/**",
	".hg/**",
	"node_modules/**",
	"bower_components/**",
	"vendor/**",
	"dist/**",
	"build/**",
	"out/**",
	"target/**",
	".next/**",
	".nuxt/**",
	".cache/**",
	"coverage/**",
	"*.min.js",
	"*.min.css",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"go.sum",
	"Cargo.lock",
	".DS_Store",
	"Thumbs.db",
	"*.log",
	"*.swp",
	".idea/**",
	".vscode/**",
}

// BinaryExtensions are never treated as text regardless of ignore config
// (spec.md §4.2 "a distinguished never-include binary/non-text set", and
// §4.3 step 2 "skip binary-extension").
var BinaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, // .svg is text (XML-based), deliberately not listed
	".mp3": true, ".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
	".wav": true, ".flac": true, ".ogg": true,
	".zip": true, ".tar": true, ".gz": true, ".7z": true, ".rar": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".class": true, ".jar": true, ".pyc": true, ".o": true, ".a": true,
}

// IsBinaryExtension reports whether ext (as returned by filepath.Ext,
// including the leading dot) is on the binary-extension list.
func IsBinaryExtension(ext string) bool {
	return BinaryExtensions[ext]
}
