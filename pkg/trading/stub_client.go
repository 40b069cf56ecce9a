package trading

import "context"

// StubClient is a scriptable, in-memory Client for tests, the trading
// package's analog of pkg/llm.StubAdapter.
type StubClient struct {
	SandboxMode bool
	Account     Account
	Positions   []Position
	Balances    Balances
	Order       SubmittedOrder

	DryRunErr error
	SubmitErr error

	DryRunCalls int
	SubmitCalls int
	ClosedCalls int
}

func NewStubClient() *StubClient {
	return &StubClient{
		SandboxMode: true,
		Account:     Account{AccountNumber: "5WX00001"},
		Order:       SubmittedOrder{OrderID: "order-1", Status: "received"},
	}
}

func (s *StubClient) Mode() string {
	if s.SandboxMode {
		return "SANDBOX"
	}
	return "LIVE"
}

func (s *StubClient) IsSandbox() bool { return s.SandboxMode }

func (s *StubClient) GetPrimaryAccount(_ context.Context) (*Account, error) {
	acct := s.Account
	return &acct, nil
}

func (s *StubClient) GetPositions(_ context.Context) ([]Position, error) {
	return s.Positions, nil
}

func (s *StubClient) GetBalances(_ context.Context) (*Balances, error) {
	b := s.Balances
	return &b, nil
}

func (s *StubClient) SubmitOrderDryRun(_ context.Context, _ string, _ map[string]any) error {
	s.DryRunCalls++
	return s.DryRunErr
}

func (s *StubClient) SubmitOrder(_ context.Context, _ string, _ map[string]any) (*SubmittedOrder, error) {
	s.SubmitCalls++
	if s.SubmitErr != nil {
		return nil, s.SubmitErr
	}
	order := s.Order
	return &order, nil
}

func (s *StubClient) Close(_ context.Context) error {
	s.ClosedCalls++
	return nil
}
