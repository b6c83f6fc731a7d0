package cards

import "strings"

// Stack is an ordered pile of cards. The top of the pile is the end of the slice.
type Stack []Card

// NewStack creates a stack from the given cards, bottom first
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// Len returns the number of cards in the stack
func (s Stack) Len() int {
	return len(s)
}

// Clone returns a copy that shares no memory with s
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// Counts returns how many times each card occurs in the stack.
func (s Stack) Counts() map[Card]int {
	counts := make(map[Card]int, len(s))
	for _, c := range s {
		counts[c]++
	}
	return counts
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
