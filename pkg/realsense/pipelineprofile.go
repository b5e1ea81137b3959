package realsense

import (
	"runtime"
	"unsafe"

	"github.com/w-utter/realsense-go/internal/bindings"
)

// PipelineProfile is the concrete device and stream selection a pipeline
// resolved to. Obtained from Pipeline.Resolve (caller closes it) or
// ActivePipeline.Profile (the session closes it on Stop).
type PipelineProfile struct {
	cptr unsafe.Pointer
}

func newPipelineProfile(h unsafe.Pointer) *PipelineProfile {
	p := &PipelineProfile{cptr: h}
	runtime.SetFinalizer(p, func(p *PipelineProfile) { _ = p.Close() })
	return p
}

// Close releases the profile. Idempotent.
func (p *PipelineProfile) Close() error {
	if p == nil || p.cptr == nil {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	bindings.DeletePipelineProfile(p.cptr)
	p.cptr = nil
	return nil
}

func (p *PipelineProfile) raw() (unsafe.Pointer, error) {
	if p == nil || p.cptr == nil {
		return nil, ErrClosed
	}
	return p.cptr, nil
}

// Device returns the device the pipeline selected. The caller owns the
// returned handle and must close it.
func (p *PipelineProfile) Device() (*Device, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}
	dev, err := bindings.PipelineProfileDevice(h)
	runtime.KeepAlive(p)
	if err != nil {
		return nil, remapError(err)
	}
	return newDevice(dev), nil
}

// Streams lists the stream profiles the pipeline will deliver. They borrow
// native storage from the selected device and must not be used after the
// pipeline profile closes.
func (p *PipelineProfile) Streams() ([]*StreamProfile, error) {
	h, err := p.raw()
	if err != nil {
		return nil, err
	}
	handles, err := bindings.PipelineProfileStreams(h)
	runtime.KeepAlive(p)
	if err != nil {
		return nil, remapError(err)
	}
	profiles := make([]*StreamProfile, 0, len(handles))
	for _, sh := range handles {
		sp, err := newStreamProfile(sh)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, sp)
	}
	return profiles, nil
}
