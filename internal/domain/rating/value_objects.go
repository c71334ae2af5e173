package rating

import (
	"strings"
	"unicode/utf8"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 1000
)

type Kind string

const (
	KindTour       Kind = "tour"
	KindRestaurant Kind = "restaurant"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindTour, KindRestaurant:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Comment is optional; an empty comment is stored as empty.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) Empty() bool    { return c.text == "" }
