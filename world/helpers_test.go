package world

import "github.com/infiniworld/apocalypse-bunny/event"

func newTestBus() *event.Bus { return event.NewBus() }
