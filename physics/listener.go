package physics

import "github.com/softboiledgames/ledge/ecs"

// Listener receives contact notifications for one volume. OnContact fires on
// every resolution pass that selects the contact (ongoing contact);
// OnContactEnter/OnContactExit fire once per transition, after the whole
// tick has been processed.
//
// Embed NopListener to implement a subset.
type Listener interface {
	OnContact(c Contact)
	OnContactEnter(other ecs.Entity)
	OnContactExit(other ecs.Entity)
}

// NopListener is a no-op Listener base.
type NopListener struct{}

func (NopListener) OnContact(Contact)         {}
func (NopListener) OnContactEnter(ecs.Entity) {}
func (NopListener) OnContactExit(ecs.Entity)  {}

// ListenerFuncs adapts plain funcs to a Listener; nil funcs are skipped.
type ListenerFuncs struct {
	Contact func(c Contact)
	Enter   func(other ecs.Entity)
	Exit    func(other ecs.Entity)
}

func (l ListenerFuncs) OnContact(c Contact) {
	if l.Contact != nil {
		l.Contact(c)
	}
}

func (l ListenerFuncs) OnContactEnter(other ecs.Entity) {
	if l.Enter != nil {
		l.Enter(other)
	}
}

func (l ListenerFuncs) OnContactExit(other ecs.Entity) {
	if l.Exit != nil {
		l.Exit(other)
	}
}
