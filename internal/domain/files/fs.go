package files

import "os"

// FS is the filesystem surface used by the file commands.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OSFS talks to the host operating system.
type OSFS struct{}

// ReadFile reads the whole file.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile creates or truncates name and writes data in one call.
func (OSFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
