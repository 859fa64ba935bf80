package universe

//DefaultTemplates are registered in every new Grid
var DefaultTemplates = []Template{
	{
		"block",
		"2x2 still life",
		[][]int{{49, 49}, {49, 50}, {50, 49}, {50, 50}},
	},
	{
		"blinker",
		"period 2 oscillator",
		[][]int{{50, 49}, {50, 50}, {50, 51}},
	},
	{
		"glider",
		"moves one cell down and right every 4 generations",
		[][]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}},
	},
	{
		"lwss",
		"lightweight spaceship",
		[][]int{{48, 11}, {48, 14}, {49, 10}, {50, 10}, {50, 14}, {51, 10}, {51, 11}, {51, 12}, {51, 13}},
	},
	{
		"testSample",
		"block next to a small loaf-like cluster",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
}
