package files

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

const filePerm = 0o644

// FilePayload is the result of opening a file.
type FilePayload struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Service executes the file commands against an FS.
type Service struct {
	fs     FS
	logger *zap.Logger
}

// NewService creates a file command service
func NewService(fsys FS, logger *zap.Logger) *Service {
	if fsys == nil {
		fsys = OSFS{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fs: fsys, logger: logger}
}

// Open reads the whole file at path as UTF-8 text.
func (s *Service) Open(path string) (*FilePayload, error) {
	normalized, err := NormalizePath(path)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(normalized)
	if err != nil {
		return nil, s.fail(ActionOpen, normalized, err)
	}

	if !utf8.Valid(data) {
		s.logger.Warn("Rejected non UTF-8 file",
			append([]zap.Field{zap.String("path", normalized)}, diagnose(data)...)...,
		)
		return nil, toCommandError(ActionOpen, ErrInvalidText)
	}

	return &FilePayload{Path: normalized, Content: string(data)}, nil
}

// Save overwrites the file at path with content.
func (s *Service) Save(path, content string) (string, error) {
	return s.write(ActionSave, path, content)
}

// SaveAs behaves exactly like Save; choosing a new path is the caller's concern.
func (s *Service) SaveAs(path, content string) (string, error) {
	return s.write(ActionSaveAs, path, content)
}

func (s *Service) write(action Action, path, content string) (string, error) {
	normalized, err := NormalizePath(path)
	if err != nil {
		return "", err
	}

	if err := s.fs.WriteFile(normalized, []byte(content), filePerm); err != nil {
		return "", s.fail(action, normalized, err)
	}

	s.logger.Debug("File written",
		zap.String("path", normalized),
		zap.Int("bytes", len(content)),
	)
	return normalized, nil
}

func (s *Service) fail(action Action, path string, err error) error {
	cmdErr := toCommandError(action, err)
	s.logger.Debug("File command failed",
		zap.String("path", path),
		zap.String("code", string(cmdErr.Code)),
		zap.Error(err),
	)
	return cmdErr
}
