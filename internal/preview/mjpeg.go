package preview

import (
	"io"
	"net/http"
	"strconv"
)

// NewMJPEGWriter prepares w for a multipart MJPEG stream and returns a
// writer whose every Write emits one JPEG part.
func NewMJPEGWriter(w http.ResponseWriter) io.Writer {
	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	return &mjpegWriter{wr: w, buf: []byte(partHeader)}
}

const partHeader = "--frame\r\nContent-Type: image/jpeg\r\nContent-Length: "

type mjpegWriter struct {
	wr  io.Writer
	buf []byte
}

func (w *mjpegWriter) Write(p []byte) (n int, err error) {
	w.buf = w.buf[:len(partHeader)]
	w.buf = append(w.buf, strconv.Itoa(len(p))...)
	w.buf = append(w.buf, "\r\n\r\n"...)
	w.buf = append(w.buf, p...)
	w.buf = append(w.buf, "\r\n"...)

	// One Write per part: browsers render a part only once the next
	// boundary arrives, so splitting it would add a frame of latency.
	if _, err = w.wr.Write(w.buf); err != nil {
		return 0, err
	}

	if f, ok := w.wr.(http.Flusher); ok {
		f.Flush()
	}
	return len(p), nil
}
