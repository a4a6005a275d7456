package sticky

import "testing"

func TestScrollNotifier(t *testing.T) {
	t.Run("notifies every listener", func(t *testing.T) {
		var n ScrollNotifier
		a, b := 0, 0
		n.Subscribe(func() { a++ })
		n.Subscribe(func() { b++ })

		n.Notify()
		if a != 1 || b != 1 {
			t.Errorf("got a=%d b=%d, want both 1", a, b)
		}
	})

	t.Run("unsubscribe stops one listener without disturbing others", func(t *testing.T) {
		var n ScrollNotifier
		a, b := 0, 0
		unsubA := n.Subscribe(func() { a++ })
		n.Subscribe(func() { b++ })

		unsubA()
		n.Notify()
		if a != 0 {
			t.Errorf("unsubscribed listener ran: a=%d", a)
		}
		if b != 1 {
			t.Errorf("remaining listener: got %d, want 1", b)
		}
	})

	t.Run("unsubscribe functions stay valid across later registrations", func(t *testing.T) {
		var n ScrollNotifier
		a, b, c := 0, 0, 0
		n.Subscribe(func() { a++ })
		unsubB := n.Subscribe(func() { b++ })
		n.Subscribe(func() { c++ })

		unsubB()
		n.Notify()
		if a != 1 || b != 0 || c != 1 {
			t.Errorf("got a=%d b=%d c=%d, want 1 0 1", a, b, c)
		}
	})

	t.Run("double unsubscribe is harmless", func(t *testing.T) {
		var n ScrollNotifier
		unsub := n.Subscribe(func() {})
		unsub()
		unsub()
		n.Notify()
	})
}
