package tms1100

const (
	STACK_DEPTH = 1 // Subroutine return register depth
)

// Frame is one call stack entry: the return program counter and the
// chapter it lives in.
type Frame struct {
	PC uint8
	CA uint8
}

// Stack is the subroutine return stack. The hardware provides a single
// register; pushing past the depth must be refused by the caller rather
// than corrupting the register.
type Stack struct {
	Frames []Frame
}

func (s *Stack) Push(frame Frame) {
	s.Frames = append(s.Frames, frame)
}

func (s *Stack) Pop() (frame Frame, ok bool) {
	frame, ok = s.Peek()
	if ok {
		s.Frames = s.Frames[:len(s.Frames)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Frames) == 0
}

func (s *Stack) Full() bool {
	return len(s.Frames) == STACK_DEPTH
}

func (s *Stack) Peek() (frame Frame, ok bool) {
	if s.Empty() {
		return
	}

	return s.Frames[len(s.Frames)-1], true
}

func (s *Stack) Reset() {
	if len(s.Frames) > 0 {
		s.Frames = s.Frames[:0]
	}
}
