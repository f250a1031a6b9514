package randomaccess

import "sync"

// Shared serialises access to a RandomAccess so that several windows can
// read from one handle. Every method holds the lock for its whole
// duration, and ReadAt holds it across the seek and the read.
type Shared struct {
	mu sync.Mutex
	ra RandomAccess
}

// Share wraps ra. All users of the resource must go through the returned
// value.
func Share(ra RandomAccess) *Shared {
	if s, ok := ra.(*Shared); ok {
		return s
	}
	return &Shared{ra: ra}
}

// ReadAt seeks to pos and reads into p as one step.
func (s *Shared) ReadAt(p []byte, pos int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ra.Seek(pos); err != nil {
		return 0, err
	}
	return s.ra.Read(p)
}

func (s *Shared) Seek(pos int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.Seek(pos)
}

func (s *Shared) Position() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.Position()
}

func (s *Shared) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.Read(p)
}

func (s *Shared) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.ReadByte()
}

func (s *Shared) Length() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.Length()
}

// Close closes the underlying resource. Windows still open on it fail
// with ErrClosed.
func (s *Shared) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ra.Close()
}
