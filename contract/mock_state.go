package contract

// MockState is the in-memory stand-in for host kv storage used by tests.
type MockState struct {
	data map[string]string
}

func NewMockState() *MockState {
	return &MockState{data: map[string]string{}}
}

func (m *MockState) Set(key string, value string) {
	m.data[key] = value
}

func (m *MockState) Get(key string) *string {
	v, ok := m.data[key]
	if !ok {
		return nil
	}
	return &v
}

// Len reports the number of stored keys, handy for cleanup assertions.
func (m *MockState) Len() int {
	return len(m.data)
}
