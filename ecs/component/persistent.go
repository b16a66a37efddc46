package component

// Persistent marks entities that survive level teardown.
type Persistent struct {
	ID string
}

var PersistentComponent = NewComponent[Persistent]()
