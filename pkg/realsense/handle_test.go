package realsense

import (
	"errors"
	"testing"
)

// Closed and zero-value handles must fail with ErrClosed instead of handing
// a nil pointer to the native library.

func TestClosedContext(t *testing.T) {
	var ctx Context

	if _, err := ctx.QueryDevices(ProductLineAny); !errors.Is(err, ErrClosed) {
		t.Fatalf("QueryDevices on closed context: %v", err)
	}
	if err := ctx.AddDeviceFromFile("x.bag"); !errors.Is(err, ErrClosed) {
		t.Fatalf("AddDeviceFromFile on closed context: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close on closed context: %v", err)
	}
}

func TestClosedDevice(t *testing.T) {
	var dev Device

	if _, err := dev.Info(CameraInfoName); !errors.Is(err, ErrClosed) {
		t.Fatalf("Info on closed device: %v", err)
	}
	if _, err := dev.QuerySensors(); !errors.Is(err, ErrClosed) {
		t.Fatalf("QuerySensors on closed device: %v", err)
	}
	if err := dev.HardwareReset(); !errors.Is(err, ErrClosed) {
		t.Fatalf("HardwareReset on closed device: %v", err)
	}
	if got := dev.Name(); got != "" {
		t.Fatalf("Name on closed device = %q", got)
	}
}

func TestClosedSensor(t *testing.T) {
	var s Sensor

	if _, err := s.Option(OptionExposure); !errors.Is(err, ErrClosed) {
		t.Fatalf("Option on closed sensor: %v", err)
	}
	if err := s.SetOption(OptionExposure, 1); !errors.Is(err, ErrClosed) {
		t.Fatalf("SetOption on closed sensor: %v", err)
	}
	if _, err := s.StreamProfiles(); !errors.Is(err, ErrClosed) {
		t.Fatalf("StreamProfiles on closed sensor: %v", err)
	}
	if _, err := s.Kind(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Kind on closed sensor: %v", err)
	}
}

func TestClosedConfigAndPipeline(t *testing.T) {
	var cfg Config
	if err := cfg.EnableAllStreams(); !errors.Is(err, ErrClosed) {
		t.Fatalf("EnableAllStreams on closed config: %v", err)
	}

	var pipe Pipeline
	if _, err := pipe.Start(nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("Start on closed pipeline: %v", err)
	}
	if _, err := pipe.Resolve(&cfg); !errors.Is(err, ErrClosed) {
		t.Fatalf("Resolve on closed pipeline: %v", err)
	}

	var active ActivePipeline
	if _, err := active.WaitFrames(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("WaitFrames on stopped session: %v", err)
	}
	if _, _, err := active.PollFrames(); !errors.Is(err, ErrClosed) {
		t.Fatalf("PollFrames on stopped session: %v", err)
	}
	if _, err := active.Stop(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Stop on stopped session: %v", err)
	}
}

func TestClosedFrames(t *testing.T) {
	var composite CompositeFrame
	if _, err := composite.Count(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Count on closed frameset: %v", err)
	}
	if _, err := composite.FrameAt(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("FrameAt on closed frameset: %v", err)
	}
	if err := composite.Close(); err != nil {
		t.Fatalf("Close on closed frameset: %v", err)
	}

	var depth DepthFrame
	if _, err := depth.DistanceAt(0, 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("DistanceAt on closed frame: %v", err)
	}

	var points PointsFrame
	if _, err := points.Vertices(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Vertices on closed frame: %v", err)
	}
}

func TestNilHandlesClose(t *testing.T) {
	// Close on nil receivers must be safe; deferred cleanup paths rely on it.
	if err := (*Context)(nil).Close(); err != nil {
		t.Fatalf("nil context Close: %v", err)
	}
	if err := (*Device)(nil).Close(); err != nil {
		t.Fatalf("nil device Close: %v", err)
	}
	if err := (*Sensor)(nil).Close(); err != nil {
		t.Fatalf("nil sensor Close: %v", err)
	}
	if err := (*Config)(nil).Close(); err != nil {
		t.Fatalf("nil config Close: %v", err)
	}
	if err := (*Pipeline)(nil).Close(); err != nil {
		t.Fatalf("nil pipeline Close: %v", err)
	}
	if err := (*CompositeFrame)(nil).Close(); err != nil {
		t.Fatalf("nil frameset Close: %v", err)
	}
}
