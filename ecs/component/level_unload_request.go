package component

// LevelUnloadRequest is a one-shot request to tear the current level down.
// Next names the level the game loop should load once teardown is done.
type LevelUnloadRequest struct {
	Next string
}

var LevelUnloadRequestComponent = NewComponent[LevelUnloadRequest]()
