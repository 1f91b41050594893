package config

const (
	defaultLogDir              = "~/.local/share/photokit/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultSimilarityThreshold = 0.80
	defaultProtectedMarker     = "final"
	defaultOrganizeSubdir      = "Organized"
)

// defaultExtensions is the photo/video allowlist the tools operate on.
func defaultExtensions() []string {
	return []string{
		"jpg", "jpeg", "png", "gif", "bmp", "tiff", "tif",
		"webp", "heic", "heif", "raw", "cr2", "nef", "arw",
		"dng", "orf", "rw2", "pef", "srw", "raf",
		"psd", "xmp",
		"avi", "mov", "wmv",
	}
}

func defaultRawExtensions() []string {
	return []string{"nef", "arw", "dng", "raf"}
}

func defaultCompanionExtensions() []string {
	return []string{"jpg", "jpeg", "cr2", "png", "xmp"}
}

func defaultJunkPatterns() []string {
	return []string{".Bridge*", ".picas*", ".bak*"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Scan: Scan{
			Extensions:          defaultExtensions(),
			SimilarityThreshold: defaultSimilarityThreshold,
			ProtectedMarker:     defaultProtectedMarker,
		},
		Organize: Organize{
			RawExtensions:       defaultRawExtensions(),
			CompanionExtensions: defaultCompanionExtensions(),
			CopyByDefault:       true,
			DefaultSubdir:       defaultOrganizeSubdir,
		},
		Cleanup: Cleanup{
			JunkPatterns: defaultJunkPatterns(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
