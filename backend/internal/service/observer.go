package service

// Observer receives application counters. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveFeed(posts int)
	ObserveUsernameUpdate(outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveFeed(int) {}
func (noopObserver) ObserveUsernameUpdate(string) {}

func orNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}
	return o
}
