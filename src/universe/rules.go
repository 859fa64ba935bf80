package universe

//Underpopulated reports whether a live cell with k live neighbours dies of loneliness
func Underpopulated(k int) bool {
	return k < 2
}

//Overpopulated reports whether a live cell with k live neighbours dies of overcrowding
func Overpopulated(k int) bool {
	return k > 3
}

//Reproduces reports whether a dead cell with k live neighbours comes to life
func Reproduces(k int) bool {
	return k == 3
}

//NextState returns the state of a cell in the next generation
func NextState(alive bool, k int) bool {
	if alive {
		return !Underpopulated(k) && !Overpopulated(k)
	}
	return Reproduces(k)
}
