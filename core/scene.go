package core

// SceneKind identifies the active host scene
type SceneKind uint8

const (
	SceneMap SceneKind = iota
	SceneBattle
)

func (k SceneKind) String() string {
	if k == SceneBattle {
		return "battle"
	}
	return "map"
}
