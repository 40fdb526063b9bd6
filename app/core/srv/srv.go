package srv

import (
	"github.com/moodlingo/moodlingo/pkg/socket/firetower"
)

type Srv struct {
	ai    *AI
	tower *Tower
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() *AI {
	return s.ai
}

func (t *Tower) Pusher() *firetower.SelfPusher[PublishData] {
	return t.pusher
}

func (s *Srv) Tower() *Tower {
	return s.tower
}
