package dino

// View receives presentation updates from the driver. It does not manage
// layout or assets; the platform decides how to show these values.
type View interface {
	SetScale(cellsPerUnit float64)
	SetScore(text string)
	SetHighScoreText(text string)
	ShowStartScreen()
	HideStartScreen()
	SetTheme(dark bool)
}

// HighScores is a single persisted integer cell.
// Implementations swallow their own I/O failures.
type HighScores interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Cues plays fire-and-forget sound cues.
type Cues interface {
	PlayCheckpointCue()
	PlayLoseCue()
}

type nopView struct{}

func (nopView) SetScale(float64) {}
func (nopView) SetScore(string) {}
func (nopView) SetHighScoreText(string) {}
func (nopView) ShowStartScreen() {}
func (nopView) HideStartScreen() {}
func (nopView) SetTheme(bool) {}

type nopCues struct{}

func (nopCues) PlayCheckpointCue() {}
func (nopCues) PlayLoseCue() {}

// memoryScores keeps the high score in memory only.
type memoryScores struct{ value int }

func (m *memoryScores) LoadHighScore() int { return m.value }
func (m *memoryScores) SaveHighScore(score int) { m.value = score }
