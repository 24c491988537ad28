package game

import "fmt"

// BoardState governs which operations a Game accepts.
type BoardState uint8

const (
	// Moving is the initial state: an active piece falls and takes input.
	Moving BoardState = iota
	// Clearing holds full rows on screen for one tick before they collapse.
	Clearing
	// Paused ignores gravity and movement until toggled back.
	Paused
	// Over is terminal.
	Over
)

var stateNames = [...]string{"Moving", "Clearing", "Paused", "Over"}

func (s BoardState) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("BoardState(%d)", uint8(s))
	}
	return stateNames[s]
}

// Input is one discrete player action delivered by the shell.
type Input uint8

const (
	Rotate Input = iota
	Left
	Right
	SoftDrop
	HardDrop
	PauseToggle
	Quit
)

var inputNames = [...]string{"Rotate", "Left", "Right", "SoftDrop", "HardDrop", "PauseToggle", "Quit"}

func (in Input) String() string {
	if int(in) >= len(inputNames) {
		return fmt.Sprintf("Input(%d)", uint8(in))
	}
	return inputNames[in]
}
