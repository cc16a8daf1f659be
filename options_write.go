package m4atag

// SaveOption configures behavior when saving a file.
//
// Options use the functional options pattern.
//
// Example:
//
//	err := file.Save(
//	    m4atag.WithBackup(".bak"),
//	    m4atag.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup copies the original file to path+suffix before rewriting it.
//
// If the backup file already exists, it is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-opens the file after writing to verify the saved tag
// can be read back. Adds overhead; use for operations where silent
// corruption would be costly.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime restores the file's original modification time
// after saving, which otherwise advances to the time of the write.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
