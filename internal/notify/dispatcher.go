package notify

import "log"

type Event struct {
	Type          string
	Title         string
	Message       string
	AppointmentID *uint
}

type Dispatcher struct {
	notifier *Notifier
	queue    chan Event
}

func NewDispatcher(notifier *Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.Notify(
			ev.Type,
			ev.Title,
			ev.Message,
			ev.AppointmentID,
		); err != nil {
			log.Println("notify error:", err)
		}
	}
}

// Dispatch never blocks a request. A full queue drops the event, and a
// nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("notification queue full, dropping event")
	}
}
