package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDig(_ *DigEvent) error           { return nil }
func (n *NoopRecorder) RecordCredit(_ *CreditEvent) error     { return nil }
func (n *NoopRecorder) RecordWithdraw(_ *WithdrawEvent) error { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *DailySnapshot) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
