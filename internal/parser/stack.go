package parser

// lineStack is the segmenter's working buffer over the OCR line sequence.
// The front of the stack is the next line to process. It is a cursor over
// the original token slice plus a small push-back list, so popping never
// reslices or shifts the backing array.
type lineStack struct {
	tokens []string
	head   int
	pushed []string // tokens pushed back, last element is the new front
}

func newLineStack(tokens []string) *lineStack {
	return &lineStack{tokens: tokens}
}

// pop removes and returns the front token. ok is false when the stack
// is empty.
func (s *lineStack) pop() (token string, ok bool) {
	if n := len(s.pushed); n > 0 {
		token = s.pushed[n-1]
		s.pushed = s.pushed[:n-1]
		return token, true
	}
	if s.head >= len(s.tokens) {
		return "", false
	}
	token = s.tokens[s.head]
	s.head++
	return token, true
}

// push puts a token back at the front of the stack. Used when a trailing
// amount fragment was fused onto a payee line and must be re-examined.
func (s *lineStack) push(token string) {
	s.pushed = append(s.pushed, token)
}

func (s *lineStack) len() int {
	return len(s.pushed) + len(s.tokens) - s.head
}
