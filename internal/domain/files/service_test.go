package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFS fails every call with err and remembers that it was touched.
type recordingFS struct {
	err     error
	reads   int
	writes  int
	written map[string][]byte
}

func (r *recordingFS) ReadFile(name string) ([]byte, error) {
	r.reads++
	return nil, r.err
}

func (r *recordingFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	r.writes++
	if r.err != nil {
		return r.err
	}
	if r.written == nil {
		r.written = make(map[string][]byte)
	}
	r.written[name] = data
	return nil
}

func requireCode(t *testing.T, err error, want Code) *CommandError {
	t.Helper()
	cmdErr, ok := AsCommandError(err)
	require.True(t, ok, "expected *CommandError, got %v", err)
	assert.Equal(t, want, cmdErr.Code)
	return cmdErr
}

func TestWhitespacePathsNeverTouchFilesystem(t *testing.T) {
	for _, raw := range []string{"", " ", "\t", "\n\r ", "\u3000"} {
		rec := &recordingFS{}
		svc := NewService(rec, nil)

		payload, err := svc.Open(raw)
		assert.Nil(t, payload)
		requireCode(t, err, CodeInvalidPath)

		path, err := svc.Save(raw, "content")
		assert.Empty(t, path)
		requireCode(t, err, CodeInvalidPath)

		path, err = svc.SaveAs(raw, "content")
		assert.Empty(t, path)
		requireCode(t, err, CodeInvalidPath)

		assert.Zero(t, rec.reads)
		assert.Zero(t, rec.writes)
	}
}

func TestOpenMissingFile(t *testing.T) {
	svc := NewService(OSFS{}, nil)

	payload, err := svc.Open(filepath.Join(t.TempDir(), "missing.md"))
	assert.Nil(t, payload)
	cmdErr := requireCode(t, err, CodeFileNotFound)
	assert.Equal(t, "Open failed: File does not exist.", cmdErr.Message)

	_, err = svc.Open("/nonexistent/path.md")
	requireCode(t, err, CodeFileNotFound)
}

func TestSaveThenOpenRoundTrip(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "ascii", content: "# Hello"},
		{name: "multibyte", content: "Saved content 保存测试 — ünïcödé 🚀"},
		{name: "empty", content: ""},
		{name: "crlf", content: "line one\r\nline two\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".md")

			saved, err := svc.Save(path, tt.content)
			require.NoError(t, err)
			assert.Equal(t, path, saved)

			payload, err := svc.Open(path)
			require.NoError(t, err)
			assert.Equal(t, path, payload.Path)
			assert.Equal(t, tt.content, payload.Content)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.content), raw)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	path := filepath.Join(t.TempDir(), "doc.md")

	_, err := svc.Save(path, "a much longer first version")
	require.NoError(t, err)
	_, err = svc.Save(path, "short")
	require.NoError(t, err)

	payload, err := svc.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "short", payload.Content)
}

func TestSaveAndSaveAsAreEquivalent(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	dir := t.TempDir()
	content := "Save As content ✓"

	savePath := filepath.Join(dir, "save.md")
	saveAsPath := filepath.Join(dir, "save-as.md")

	gotSave, errSave := svc.Save(savePath, content)
	gotSaveAs, errSaveAs := svc.SaveAs(saveAsPath, content)
	require.NoError(t, errSave)
	require.NoError(t, errSaveAs)
	assert.Equal(t, savePath, gotSave)
	assert.Equal(t, saveAsPath, gotSaveAs)

	a, err := os.ReadFile(savePath)
	require.NoError(t, err)
	b, err := os.ReadFile(saveAsPath)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Same path, same arguments: identical result.
	again, err := svc.SaveAs(savePath, content)
	require.NoError(t, err)
	assert.Equal(t, gotSave, again)
}

func TestSaveTrimsPath(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	path := filepath.Join(t.TempDir(), "trimmed.md")

	got, err := svc.Save("  "+path+"\t", "text")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	payload, err := svc.Open("\n" + path + " ")
	require.NoError(t, err)
	assert.Equal(t, path, payload.Path)
	assert.Equal(t, "text", payload.Content)
}

func TestOpenInvalidUTF8(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	path := filepath.Join(t.TempDir(), "latin1.md")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9, 0xff, 0xfe}, 0o644))

	payload, err := svc.Open(path)
	assert.Nil(t, payload)
	cmdErr := requireCode(t, err, CodeInvalidText)
	assert.Equal(t, "Open failed: File is not valid UTF-8 text.", cmdErr.Message)
}

func TestOpenDirectoryIsIOError(t *testing.T) {
	svc := NewService(OSFS{}, nil)

	_, err := svc.Open(t.TempDir())
	requireCode(t, err, CodeIOError)
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	svc := NewService(OSFS{}, nil)
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "doc.md")

	_, err := svc.Save(path, "x")
	cmdErr := requireCode(t, err, CodeFileNotFound)
	assert.Equal(t, "Save failed: File does not exist.", cmdErr.Message)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    Code
		wantMsg string
	}{
		{
			name:    "permission",
			err:     &fs.PathError{Op: "open", Path: "/x.md", Err: fs.ErrPermission},
			want:    CodePermissionDenied,
			wantMsg: "Save As failed: Permission denied.",
		},
		{
			name:    "exists",
			err:     &fs.PathError{Op: "open", Path: "/x.md", Err: fs.ErrExist},
			want:    CodeAlreadyExists,
			wantMsg: "Save As failed: Target file already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingFS{err: tt.err}
			svc := NewService(rec, nil)

			_, err := svc.SaveAs("/x.md", "content")
			cmdErr := requireCode(t, err, tt.want)
			assert.Equal(t, tt.wantMsg, cmdErr.Message)
			assert.Equal(t, 1, rec.writes)
		})
	}
}

func TestOpenPermissionDenied(t *testing.T) {
	rec := &recordingFS{err: &fs.PathError{Op: "open", Path: "/secret.md", Err: fs.ErrPermission}}
	svc := NewService(rec, nil)

	_, err := svc.Open("/secret.md")
	cmdErr := requireCode(t, err, CodePermissionDenied)
	assert.Equal(t, "Open failed: Permission denied.", cmdErr.Message)
}

func TestDiagnoseInvalidText(t *testing.T) {
	fields := diagnose([]byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00})

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.Contains(t, keys, "size")
	assert.Contains(t, keys, "mime")
}
