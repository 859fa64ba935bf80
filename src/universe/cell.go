package universe

//Cell is a single site of the universe
//index is the row-major position and never changes after the grid is built
type Cell struct {
	alive bool
	index int
}

func (c *Cell) SetAlive() {
	c.alive = true
}

func (c *Cell) SetDead() {
	c.alive = false
}

func (c *Cell) Toggle() {
	c.alive = !c.alive
}

func (c Cell) IsAlive() bool {
	return c.alive
}

func (c Cell) Index() int {
	return c.index
}

//Position returns the row and column of the cell
func (c Cell) Position() (row int, col int) {
	return c.index / Width, c.index % Width
}
