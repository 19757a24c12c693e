package ledger

import "math/big"

// MockReserve is a test double for Reserve. All function fields must be
// set before the corresponding method is called.
type MockReserve struct {
	CurrentValueFn func() (*big.Int, error)
	PullInFn       func(from Principal, amount *big.Int) (*big.Int, error)
	PushOutFn      func(to Principal, amount *big.Int) error
}

func (m *MockReserve) CurrentValue() (*big.Int, error) {
	return m.CurrentValueFn()
}

func (m *MockReserve) PullIn(from Principal, amount *big.Int) (*big.Int, error) {
	return m.PullInFn(from, amount)
}

func (m *MockReserve) PushOut(to Principal, amount *big.Int) error {
	return m.PushOutFn(to, amount)
}

// MockGate is a test double for AccessGate.
type MockGate struct {
	IsPausedFn          func() bool
	RequirePrivilegedFn func(caller Principal) error
}

func (m *MockGate) IsPaused() bool {
	return m.IsPausedFn()
}

func (m *MockGate) RequirePrivileged(caller Principal) error {
	return m.RequirePrivilegedFn(caller)
}
