package component

// Clock is the singleton tick clock, in seconds.
type Clock struct {
	Delta   float64
	Elapsed float64
	Ticks   int
}

var ClockComponent = NewComponent[Clock]()
