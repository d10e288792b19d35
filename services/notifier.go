package services

// Notifier is told about every successful write so connected dashboards can
// refresh. Implementations must not block.
type Notifier interface {
	Notify(entity, action string, id uint)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, uint) {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
