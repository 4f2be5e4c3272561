package robot

// Label is the category painted on a square of the line.
type Label string

const (
	Window Label = "window"
	Wall   Label = "wall"
)

// LabelAt returns the true label at a position: squares alternate,
// with position 0 being a window.
func LabelAt(pos int) Label {
	if pos%2 == 0 {
		return Window
	}
	return Wall
}
