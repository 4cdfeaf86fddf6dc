// Package signals carries the discrete gameplay notifications raised during a
// frame: coin collected, enemy stomped, player damaged and so on. Signals are
// published on a donburi world and delivered in emission order when the frame
// flushes them.
package signals

import (
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type Kind int

const (
	CoinCollected Kind = iota
	EnemyStomped
	PlayerDamaged
	PlayerJumped
	PlayerDied
	GameOver
	LevelCompleted
)

func (k Kind) String() string {
	switch k {
	case CoinCollected:
		return "coin_collected"
	case EnemyStomped:
		return "enemy_stomped"
	case PlayerDamaged:
		return "player_damaged"
	case PlayerJumped:
		return "player_jumped"
	case PlayerDied:
		return "player_died"
	case GameOver:
		return "game_over"
	case LevelCompleted:
		return "level_completed"
	}
	return "unknown"
}

// Signal is one notification. Value holds the score gained or the damage
// taken; NextLevel is only set for LevelCompleted.
type Signal struct {
	Kind      Kind
	Entity    donburi.Entity
	Value     int
	NextLevel string
}

var Event = events.NewEventType[Signal]()

// Emit queues sig on w. Subscribers see it on the next flush.
func Emit(w donburi.World, sig Signal) {
	Event.Publish(w, sig)
}

// Recorder collects the signals of one world between flushes.
type Recorder struct {
	world   donburi.World
	pending []Signal
}

// Each world has a single event subscriber, dispatch, which fans out to the
// recorders registered for that world. Unsubscribe matches handlers by code
// pointer, so per-recorder method values cannot be told apart.
var (
	mu        sync.Mutex
	recorders = map[donburi.World][]*Recorder{}
)

func NewRecorder(w donburi.World) *Recorder {
	r := &Recorder{world: w}

	mu.Lock()
	defer mu.Unlock()
	if len(recorders[w]) == 0 {
		Event.Subscribe(w, dispatch)
	}
	recorders[w] = append(recorders[w], r)
	return r
}

func dispatch(w donburi.World, sig Signal) {
	mu.Lock()
	rs := recorders[w]
	mu.Unlock()
	for _, r := range rs {
		r.pending = append(r.pending, sig)
	}
}

// Flush delivers every queued signal and returns them in emission order.
// The returned slice is owned by the caller.
func (r *Recorder) Flush() []Signal {
	Event.ProcessEvents(r.world)
	out := r.pending
	r.pending = nil
	return out
}

// Close detaches the recorder from its world. Other recorders on the same
// world keep receiving signals.
func (r *Recorder) Close() {
	mu.Lock()
	defer mu.Unlock()

	rs := recorders[r.world]
	for i, other := range rs {
		if other != r {
			continue
		}
		rest := make([]*Recorder, 0, len(rs)-1)
		rest = append(rest, rs[:i]...)
		rest = append(rest, rs[i+1:]...)
		if len(rest) == 0 {
			delete(recorders, r.world)
			Event.Unsubscribe(r.world, dispatch)
		} else {
			recorders[r.world] = rest
		}
		break
	}
	r.pending = nil
}
