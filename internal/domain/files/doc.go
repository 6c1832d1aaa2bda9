// Package files implements the editor's file commands.
//
// Every command follows the same linear chain:
//
//	raw path → NormalizePath → one filesystem read or write → result or *CommandError
//
// Failures are mapped into a closed taxonomy (see Code) so the front end can
// display them without inspecting OS error kinds. Nothing is retried and no
// state is kept between invocations.
//
// Example Usage:
//
//	svc := files.NewService(files.OSFS{}, logger)
//	payload, err := svc.Open("/tmp/notes.md")
//	if cmdErr, ok := files.AsCommandError(err); ok {
//		logger.Warn("open failed", zap.String("code", string(cmdErr.Code)))
//	}
package files
