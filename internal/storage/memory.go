package storage

// Memory is an in-process KV, used by tests and as a scratch store.
type Memory struct {
	data map[string]string
	// Fail, when set, is returned by every Set call.
	Fail error
}

var _ KV = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.data[key] = value
	return nil
}
