package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string; clients send both
// ("category": 5 and "category": "5").
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = flexInt{}
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("%v is not an integer", v)
		}
		if v >= float64(math.MaxInt) || v < float64(math.MinInt) {
			return fmt.Errorf("%v is out of range", v)
		}
		f.Value, f.Set = int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%q is not an integer", v)
		}
		f.Value, f.Set = n, true
	default:
		return fmt.Errorf("expected an integer, got %s", data)
	}
	return nil
}

type requestKind int

const (
	unknownRequest requestKind = iota
	createRequest
	searchRequest
)

// QuestionRequest is the body of POST /questions. It is either a new
// question or a search; kind decides which.
type QuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Difficulty flexInt `json:"difficulty"`
	Category   flexInt `json:"category"`
	SearchTerm string  `json:"searchTerm"`
}

func (r QuestionRequest) kind() requestKind {
	switch {
	case strings.TrimSpace(r.Question) != "" && strings.TrimSpace(r.Answer) != "":
		return createRequest
	case r.SearchTerm != "":
		return searchRequest
	default:
		return unknownRequest
	}
}

type NewQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Difficulty int    `validate:"min=1,max=5"`
	Category   int    `validate:"min=1"`
}

// UpdateQuestionRequest is the body of PATCH /questions/:id; omitted
// fields keep their stored value.
type UpdateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty flexInt `json:"difficulty"`
	Category   flexInt `json:"category"`
}

type QuizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}
