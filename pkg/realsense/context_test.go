package realsense_test

import (
	"errors"
	"testing"

	"github.com/w-utter/realsense-go/pkg/realsense"
)

// The lifecycle tests run against the native library when it is linked in
// and skip otherwise, so the suite passes on machines without librealsense2.

func newTestContext(t *testing.T) *realsense.Context {
	t.Helper()
	ctx, err := realsense.NewContext()
	if errors.Is(err, realsense.ErrNotBuilt) {
		t.Skip("native bindings not built")
	}
	if err != nil {
		t.Fatalf("create context: %v", err)
	}
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestContextLifecycle(t *testing.T) {
	ctx := newTestContext(t)

	devices, err := ctx.QueryDevices(realsense.ProductLineAny)
	if err != nil {
		t.Fatalf("query devices: %v", err)
	}
	for _, dev := range devices {
		_ = dev.Close()
	}

	if err := ctx.Close(); err != nil {
		t.Fatalf("close context: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("double close: %v", err)
	}
	if _, err := ctx.QueryDevices(realsense.ProductLineAny); !errors.Is(err, realsense.ErrClosed) {
		t.Fatalf("query after close: %v", err)
	}
}

func TestDeviceEnumeration(t *testing.T) {
	ctx := newTestContext(t)

	devices, err := ctx.QueryDevices(realsense.ProductLineAny)
	if err != nil {
		t.Fatalf("query devices: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("no devices connected")
	}

	for _, dev := range devices {
		if dev.SerialNumber() == "" {
			t.Error("connected device reports no serial number")
		}

		sensors, err := dev.QuerySensors()
		if err != nil {
			t.Fatalf("query sensors: %v", err)
		}
		for _, s := range sensors {
			profiles, err := s.StreamProfiles()
			if err != nil {
				t.Fatalf("stream profiles: %v", err)
			}
			if len(profiles) == 0 {
				t.Error("sensor offers no stream profiles")
			}
			for _, p := range profiles {
				if p.Framerate() < 0 {
					t.Errorf("profile %s has negative framerate", p)
				}
			}
			_ = s.Close()
		}
		_ = dev.Close()
	}
}

func TestPipelineConfigResolution(t *testing.T) {
	ctx := newTestContext(t)

	cfg, err := realsense.NewConfig()
	if err != nil {
		t.Fatalf("create config: %v", err)
	}
	defer cfg.Close()

	err = cfg.EnableStream(realsense.StreamDepth, realsense.StreamIndexAny, 0, 0, realsense.FormatZ16, 0)
	if err != nil {
		t.Fatalf("enable stream: %v", err)
	}

	pipe, err := realsense.NewPipeline(ctx)
	if err != nil {
		t.Fatalf("create pipeline: %v", err)
	}
	defer pipe.Close()

	ok, err := pipe.CanResolve(cfg)
	if err != nil {
		t.Fatalf("can resolve: %v", err)
	}
	if !ok {
		t.Skip("no connected device offers a depth stream")
	}

	profile, err := pipe.Resolve(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	defer profile.Close()

	dev, err := profile.Device()
	if err != nil {
		t.Fatalf("profile device: %v", err)
	}
	defer dev.Close()

	streams, err := profile.Streams()
	if err != nil {
		t.Fatalf("profile streams: %v", err)
	}
	if len(streams) == 0 {
		t.Fatal("resolved profile carries no streams")
	}
}

func TestStreamingRoundtrip(t *testing.T) {
	ctx := newTestContext(t)

	devices, err := ctx.QueryDevices(realsense.ProductLineAny)
	if err != nil {
		t.Fatalf("query devices: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("no devices connected")
	}
	for _, dev := range devices {
		_ = dev.Close()
	}

	pipe, err := realsense.NewPipeline(ctx)
	if err != nil {
		t.Fatalf("create pipeline: %v", err)
	}
	defer pipe.Close()

	active, err := pipe.Start(nil)
	if err != nil {
		t.Fatalf("start pipeline: %v", err)
	}

	frames, err := active.WaitFrames(0)
	if err != nil {
		t.Fatalf("wait frames: %v", err)
	}
	n, err := frames.Count()
	if err != nil {
		t.Fatalf("frameset count: %v", err)
	}
	if n == 0 {
		t.Error("frameset arrived empty")
	}

	extracted, err := frames.Frames()
	if err != nil {
		t.Fatalf("extract frames: %v", err)
	}
	for _, f := range extracted {
		if _, err := f.Timestamp(); err != nil {
			t.Errorf("timestamp: %v", err)
		}
		if _, err := f.Profile(); err != nil {
			t.Errorf("profile: %v", err)
		}
		_ = f.Close()
	}
	_ = frames.Close()

	idle, err := active.Stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if idle != pipe {
		t.Fatal("Stop should hand back the original pipeline")
	}
}
