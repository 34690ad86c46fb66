package engine

import "github.com/lixenwraith/returnspell/core"

// Scene is the active host scene
type Scene struct {
	Kind core.SceneKind
}

// IsBattleActive reports whether the active scene is a battle
func (s *Scene) IsBattleActive() bool {
	return s.Kind == core.SceneBattle
}

// Toggle switches between map and battle and returns the new kind
func (s *Scene) Toggle() core.SceneKind {
	if s.Kind == core.SceneBattle {
		s.Kind = core.SceneMap
	} else {
		s.Kind = core.SceneBattle
	}
	return s.Kind
}
