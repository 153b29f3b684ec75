package suite

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/types"
)

// Memory allocates through the host's memory suite
type Memory struct {
	suite MemorySuite
}

// NewMemory creates a Memory for the given suite
func NewMemory(s MemorySuite) *Memory {
	return &Memory{suite: s}
}

// Alloc returns n bytes, handle may be an effect instance handle or nil
func (m *Memory) Alloc(n int, handle interface{}) ([]byte, error) {
	data, st := m.suite.MemoryAlloc(handle, n)
	if st != types.StatOK || data == nil {
		return nil, errors.ErrMemory
	}

	return data, nil
}

// Free releases data, an error from the host is reported as a suite error
func (m *Memory) Free(data []byte) error {
	if data == nil {
		return nil
	}

	return errors.FromStatus(m.suite.MemoryFree(data))
}
