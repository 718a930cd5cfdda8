package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	f := newFixture(t, nil)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rec := f.do(http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "v1.2.3", rec.Body.String())
}

func TestGetServerVersion_Empty(t *testing.T) {
	f := newFixture(t, nil)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("")

	rec := f.do(http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Empty(t, rec.Body.String())
}
