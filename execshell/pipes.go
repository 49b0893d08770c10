package execshell

import "os"

type pipeDirection int

const (
	pipeDirectionToChild pipeDirection = iota
	pipeDirectionFromChild
)

// pipePair holds both ends of an os.Pipe. The child end is handed to the
// child process and closed in the parent right after start.
type pipePair struct {
	parentEnd *os.File
	childEnd  *os.File
}

func newPipePair(direction pipeDirection) (pipePair, error) {
	readEnd, writeEnd, pipeError := os.Pipe()
	if pipeError != nil {
		return pipePair{}, pipeError
	}
	if direction == pipeDirectionToChild {
		return pipePair{parentEnd: writeEnd, childEnd: readEnd}, nil
	}
	return pipePair{parentEnd: readEnd, childEnd: writeEnd}, nil
}

func (pair *pipePair) closeChildEnd() {
	_ = closeStream(&pair.childEnd)
}

func (pair *pipePair) closeAll() {
	_ = closeStream(&pair.childEnd)
	_ = closeStream(&pair.parentEnd)
}
