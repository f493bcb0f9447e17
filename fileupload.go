package pom

import (
	"os"
	"path/filepath"
	"strings"
)

// FileUpload wraps an <input type="file">.
type FileUpload struct {
	*Element
}

// NewFileUpload returns a FileUpload. An empty name defaults to
// "FileUpload".
func NewFileUpload(s *Session, selector, name string) *FileUpload {
	return &FileUpload{newTyped(s, selector, name, "FileUpload")}
}

// absPath resolves p against the working directory and checks that it
// exists on the session filesystem.
func (f *FileUpload) absPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if _, err := f.session.fs.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Element: f.name, Kind: "file", Key: abs}
		}
		return "", err
	}
	return abs, nil
}

// UploadFile puts the file at path into the input.
func (f *FileUpload) UploadFile(path string) error {
	return f.UploadMultipleFiles(path)
}

// UploadMultipleFiles puts every file into the input. The input must carry
// the multiple attribute for more than one to stick.
func (f *FileUpload) UploadMultipleFiles(paths ...string) error {
	f.log().WithField("action", "upload").Infof("Uploading %d file(s)", len(paths))
	if _, err := f.State().WaitForExist(); err != nil {
		return err
	}
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := f.absPath(p)
		if err != nil {
			return err
		}
		abs = append(abs, a)
	}
	we, err := f.Resolve()
	if err != nil {
		return err
	}
	// File inputs take several paths separated by newlines.
	return f.wrap("upload to", we.SendKeys(strings.Join(abs, "\n")))
}

// FileName returns the base name of the selected file, or "".
func (f *FileUpload) FileName() (string, error) {
	v, err := f.Attribute("value")
	if err != nil {
		return "", err
	}
	// Browsers report "C:\fakepath\name" whatever the platform.
	if i := strings.LastIndexAny(v, `/\`); i >= 0 {
		v = v[i+1:]
	}
	return v, nil
}

// HasFile reports whether a file is selected.
func (f *FileUpload) HasFile() (bool, error) {
	v, err := f.Attribute("value")
	return v != "", err
}

// AllowedFileTypes returns the accept attribute.
func (f *FileUpload) AllowedFileTypes() (string, error) {
	return f.Attribute("accept")
}

// AllowsMultiple reports whether the multiple attribute is present.
func (f *FileUpload) AllowsMultiple() (bool, error) {
	return f.HasAttribute("multiple")
}
