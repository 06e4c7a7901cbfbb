package hearts

// Session drives the frame loop of an interactive host. It owns the current
// parameter snapshot and the one-shot export request.
type Session struct {
	composer      *Composer
	params        Params
	exportPending bool
}

// NewSession returns a session composing frames with c, starting from p.
// A nil composer is replaced by a time seeded one.
func NewSession(c *Composer, p Params) *Session {
	if c == nil {
		c = &Composer{}
	}
	return &Session{composer: c, params: p}
}

// Params returns the current snapshot.
func (s *Session) Params() Params {
	return s.params
}

// SetParams replaces the snapshot used by the next frame.
func (s *Session) SetParams(p Params) {
	s.params = p
}

// RequestExport marks the next frame for export.
func (s *Session) RequestExport() {
	s.exportPending = true
}

// ExportPending reports whether the next frame will be exported.
func (s *Session) ExportPending() bool {
	return s.exportPending
}

// Frame composes one frame from the current snapshot. The returned flag tells
// whether this frame has to be exported too; the request is consumed either way,
// including when composition fails.
func (s *Session) Frame() (*Frame, bool, error) {
	export := s.exportPending
	s.exportPending = false

	f, err := s.composer.Compose(s.params)
	if err != nil {
		return nil, export, err
	}
	return f, export, nil
}
