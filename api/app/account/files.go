package account

import (
	"net/http"
	"path"
)

// staticFS serves the account static files, directories are only served when
// they carry an index.html
type staticFS struct {
	fs http.FileSystem
}

func (s staticFS) Open(name string) (http.File, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}
	index, err := s.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	_ = index.Close()
	return f, nil
}
