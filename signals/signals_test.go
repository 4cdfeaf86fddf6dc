package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestRecorderFlushKeepsOrder(t *testing.T) {
	w := donburi.NewWorld()
	r := NewRecorder(w)

	Emit(w, Signal{Kind: PlayerJumped})
	Emit(w, Signal{Kind: CoinCollected, Value: 10})
	Emit(w, Signal{Kind: EnemyStomped, Value: 100})

	got := r.Flush()
	require.Len(t, got, 3)
	assert.Equal(t, PlayerJumped, got[0].Kind)
	assert.Equal(t, CoinCollected, got[1].Kind)
	assert.Equal(t, 10, got[1].Value)
	assert.Equal(t, EnemyStomped, got[2].Kind)

	assert.Empty(t, r.Flush(), "flushed signals are not delivered twice")
}

func TestRecorderIsPerWorld(t *testing.T) {
	a, b := donburi.NewWorld(), donburi.NewWorld()
	ra, rb := NewRecorder(a), NewRecorder(b)

	Emit(a, Signal{Kind: GameOver})

	assert.Len(t, ra.Flush(), 1)
	assert.Empty(t, rb.Flush())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "level_completed", LevelCompleted.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestClosingOneRecorderKeepsTheOther(t *testing.T) {
	w := donburi.NewWorld()
	a := NewRecorder(w)
	b := NewRecorder(w)
	t.Cleanup(a.Close)

	b.Close()
	b.Close()
	Emit(w, Signal{Kind: CoinCollected, Value: 10})

	got := a.Flush()
	require.Len(t, got, 1)
	assert.Equal(t, CoinCollected, got[0].Kind)
	assert.Empty(t, b.Flush())
}

func TestRecordersOnOneWorldEachSeeEverySignal(t *testing.T) {
	w := donburi.NewWorld()
	a, b := NewRecorder(w), NewRecorder(w)

	Emit(w, Signal{Kind: PlayerJumped})

	assert.Len(t, a.Flush(), 1)
	assert.Len(t, b.Flush(), 1, "flushing a delivers to b too")
	assert.Empty(t, b.Flush())

	a.Close()
	b.Close()
	Emit(w, Signal{Kind: PlayerJumped})
	assert.Empty(t, a.Flush())
}
