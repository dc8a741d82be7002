package ui

// Window sizing
const (
	WindowWidth  float32 = 700
	WindowHeight float32 = 450
	LogoSize     float32 = 48
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)
