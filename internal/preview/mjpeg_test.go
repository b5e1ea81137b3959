package preview

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMJPEGWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewMJPEGWriter(rec)

	assert.Equal(t, "multipart/x-mixed-replace; boundary=frame", rec.Header().Get("Content-Type"))

	first := []byte("first-jpeg")
	second := []byte("second")

	n, err := w.Write(first)
	require.NoError(t, err)
	assert.Equal(t, len(first), n)

	_, err = w.Write(second)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "--frame\r\n"))

	wantPart := fmt.Sprintf("--frame\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\nfirst-jpeg\r\n", len(first))
	assert.True(t, strings.HasPrefix(body, wantPart), "first part malformed:\n%q", body)
	assert.Contains(t, body, fmt.Sprintf("Content-Length: %d\r\n\r\nsecond\r\n", len(second)))
	assert.True(t, rec.Flushed)
}
