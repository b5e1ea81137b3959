package preview

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(src Source) *Server {
	return NewServer(Config{Logger: zerolog.Nop()}, src)
}

func staticSource(frames int) Source {
	img := rgbImage(8, 8)
	served := 0
	return SourceFunc(func(ctx context.Context) (Image, error) {
		if err := ctx.Err(); err != nil {
			return Image{}, err
		}
		if frames > 0 && served >= frames {
			return Image{}, errors.New("stream ended")
		}
		served++
		return img, nil
	})
}

func TestSnapshotRoute(t *testing.T) {
	srv := testServer(staticSource(0))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/snapshot", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	decoded, err := jpeg.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
}

func TestSnapshotRouteNoFrame(t *testing.T) {
	srv := testServer(SourceFunc(func(context.Context) (Image, error) {
		return Image{}, errors.New("camera unplugged")
	}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/snapshot", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStreamRouteServesParts(t *testing.T) {
	srv := testServer(staticSource(3))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.Equal(t, "multipart/x-mixed-replace; boundary=frame", rec.Header().Get("Content-Type"))
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "--frame\r\n"))
}

func TestMetricsRoute(t *testing.T) {
	srv := testServer(staticSource(1))

	// Serve one snapshot so a counter has a sample.
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/snapshot", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "preview_frames_served_total")
	assert.Contains(t, string(body), "preview_bytes_sent_total")
}

func TestIndexRoute(t *testing.T) {
	srv := testServer(staticSource(0))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`/stream`)))
}
