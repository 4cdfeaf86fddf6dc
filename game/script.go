package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ScriptStep holds a set of commands for a number of ticks.
type ScriptStep struct {
	Ticks    int
	Commands Commands
}

// ScriptedInput replays steps in order, then reports no input.
type ScriptedInput struct {
	steps []ScriptStep
	step  int
	used  int
}

func NewScriptedInput(steps ...ScriptStep) *ScriptedInput {
	return &ScriptedInput{steps: steps}
}

func (s *ScriptedInput) Poll() Commands {
	for s.step < len(s.steps) {
		cur := s.steps[s.step]
		if s.used < cur.Ticks {
			s.used++
			return cur.Commands
		}
		s.step++
		s.used = 0
	}
	return Commands{}
}

// Done reports whether every step has been replayed.
func (s *ScriptedInput) Done() bool {
	return s.step >= len(s.steps)
}

// ParseScript reads a comma separated list of action:ticks pairs.
// Actions are idle, left, right, jump or a + joined combination such as
// right+jump.
//
//	right:120,right+jump:5,idle:30
func ParseScript(src string) ([]ScriptStep, error) {
	var steps []ScriptStep
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		action, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script step %q: missing tick count", part)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("script step %q: bad tick count", part)
		}

		var cmd Commands
		for _, a := range strings.Split(action, "+") {
			switch strings.ToLower(strings.TrimSpace(a)) {
			case "idle", "":
			case "left":
				cmd.Left = true
			case "right":
				cmd.Right = true
			case "jump":
				cmd.Jump = true
			default:
				return nil, fmt.Errorf("script step %q: unknown action %q", part, a)
			}
		}
		steps = append(steps, ScriptStep{Ticks: ticks, Commands: cmd})
	}
	return steps, nil
}
