package realsense

import (
	"runtime"
	"time"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// DefaultTimeout is the frame wait deadline used when WaitFrames is called
// with a zero timeout. It matches the library's RS2_DEFAULT_TIMEOUT.
const DefaultTimeout = 15 * time.Second

// Pipeline is an idle streaming session. Start moves it into an
// ActivePipeline; the two types make it impossible to wait for frames on a
// pipeline that was never started.
type Pipeline struct {
	cptr unsafe.Pointer
}

// NewPipeline creates an idle pipeline on ctx. The pipeline must be closed
// before the context.
func NewPipeline(ctx *Context) (*Pipeline, error) {
	h, err := ctx.raw()
	if err != nil {
		return nil, err
	}
	pipe, err := bindings.CreatePipeline(h)
	runtime.KeepAlive(ctx)
	if err != nil {
		return nil, remapError(err)
	}
	p := &Pipeline{cptr: pipe}
	runtime.SetFinalizer(p, func(p *Pipeline) { _ = p.Close() })
	return p, nil
}

// Close releases the pipeline. Idempotent. Closing while active stops
// streaming implicitly inside the library.
func (p *Pipeline) Close() error {
	if p == nil || p.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	bindings.DeletePipeline(p.cptr)
	p.cptr = nil
	return nil
}

func (p *Pipeline) raw() (unsafe.Pointer, error) {
	if p == nil || p.cptr == nil {
		return nil, ErrClosed
	}
	return p.cptr, nil
}

// CanResolve reports whether cfg's requests are satisfiable by a connected
// device, without committing to anything.
func (p *Pipeline) CanResolve(cfg *Config) (bool, error) {
	h, err := p.raw()
	if err != nil {
		return false, err
	}
	ch, err := cfg.raw()
	if err != nil {
		return false, err
	}
	ok, err := bindings.ConfigCanResolve(ch, h)
	runtime.KeepAlive(p)
	runtime.KeepAlive(cfg)
	return ok, remapError(err)
}

// Resolve maps cfg's requests onto a concrete device and stream selection
// without starting the pipeline. The returned profile must be closed.
func (p *Pipeline) Resolve(cfg *Config) (*PipelineProfile, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}
	ch, err := cfg.raw()
	if err != nil {
		return nil, err
	}
	pp, err := bindings.ConfigResolve(ch, h)
	runtime.KeepAlive(p)
	runtime.KeepAlive(cfg)
	if err != nil {
		return nil, remapError(err)
	}
	return newPipelineProfile(pp), nil
}

// Start begins streaming and returns the active session. A nil cfg starts
// with the library's defaults (depth plus color when available). The
// Pipeline handle stays owned by the returned ActivePipeline until Stop.
func (p *Pipeline) Start(cfg *Config) (*ActivePipeline, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}

	var (
		pp   unsafe.Pointer
		serr error
	)
	if cfg == nil {
		pp, serr = bindings.PipelineStart(h)
	} else {
		var ch unsafe.Pointer
		ch, err = cfg.raw()
		if err != nil {
			return nil, err
		}
		pp, serr = bindings.PipelineStartWithConfig(h, ch)
		runtime.KeepAlive(cfg)
	}
	runtime.KeepAlive(p)
	if serr != nil {
		return nil, remapError(serr)
	}

	return &ActivePipeline{pipe: p, profile: newPipelineProfile(pp)}, nil
}

// ActivePipeline is a streaming session. Frames are pulled with WaitFrames
// or PollFrames; Stop hands the underlying pipeline back for reuse.
type ActivePipeline struct {
	pipe    *Pipeline
	profile *PipelineProfile
}

// Profile describes the device and streams the session resolved to. The
// profile is owned by the session; it is closed by Stop.
func (a *ActivePipeline) Profile() *PipelineProfile {
	if a == nil {
		return nil
	}
	return a.profile
}

// WaitFrames blocks until the next frameset arrives or the timeout expires.
// A zero timeout means DefaultTimeout. Expiry is reported as ErrTimeout.
// The returned frame is owned by the caller and must be closed.
func (a *ActivePipeline) WaitFrames(timeout time.Duration) (*CompositeFrame, error) {
	if a == nil || a.pipe == nil {
		return nil, ErrClosed
	}
	h, err := a.pipe.raw()
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	f, err := bindings.PipelineWaitForFrames(h, uint32(timeout.Milliseconds()))
	runtime.KeepAlive(a.pipe)
	if err != nil {
		err = remapError(err)
		if isFrameTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return newCompositeFrame(f), nil
}

// PollFrames returns the next frameset if one is already queued. ok is false
// when no frame was ready; that is not an error.
func (a *ActivePipeline) PollFrames() (frame *CompositeFrame, ok bool, err error) {
	if a == nil || a.pipe == nil {
		return nil, false, ErrClosed
	}
	h, err := a.pipe.raw()
	if err != nil {
		return nil, false, err
	}

	f, ready, err := bindings.PipelinePollForFrames(h)
	runtime.KeepAlive(a.pipe)
	if err != nil {
		return nil, false, remapError(err)
	}
	if !ready {
		return nil, false, nil
	}
	return newCompositeFrame(f), true, nil
}

// Stop ends the session and returns the idle pipeline, which may be started
// again. The session and its profile are unusable afterwards.
func (a *ActivePipeline) Stop() (*Pipeline, error) {
	if a == nil || a.pipe == nil {
		return nil, ErrClosed
	}
	h, err := a.pipe.raw()
	if err != nil {
		return nil, err
	}

	stopErr := bindings.PipelineStop(h)
	runtime.KeepAlive(a.pipe)

	_ = a.profile.Close()
	a.profile = nil
	pipe := a.pipe
	a.pipe = nil

	if stopErr != nil {
		return nil, remapError(stopErr)
	}
	return pipe, nil
}
