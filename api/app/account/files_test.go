package account

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestStaticFSHidesDirectoriesWithoutIndex(t *testing.T) {
	s := staticFS{http.FS(fstest.MapFS{
		"css/site.css":   {Data: []byte("body{}")},
		"img/index.html": {Data: []byte("<p>ok</p>")},
		"img/app_01.png": {Data: []byte("png")},
	})}

	f, err := s.Open("/css/site.css")
	if assert.NoError(t, err) {
		assert.NoError(t, f.Close())
	}

	_, err = s.Open("/css")
	assert.Error(t, err)

	d, err := s.Open("/img")
	if assert.NoError(t, err) {
		assert.NoError(t, d.Close())
	}

	_, err = s.Open("/missing.css")
	assert.Error(t, err)
}
