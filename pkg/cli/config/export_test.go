package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSeedFileForTest creates a SeedFile pointing at path for testing purposes
func NewSeedFileForTest(path string) *SeedFile {
	return &SeedFile{path: path}
}
