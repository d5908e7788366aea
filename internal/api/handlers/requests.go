package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
)

// FlexibleID is an integer id that also accepts its decimal string form or
// an object carrying it under "id", e.g. {"id": 1, "type": "Science"}
type FlexibleID int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty id")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("id %q is not an integer", s)
		}
		*f = FlexibleID(n)
		return nil
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 || obj.ID[0] == '{' {
			return errors.New("object id must be a number or string")
		}
		return f.UnmarshalJSON(obj.ID)
	default:
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexibleID(n)
		return nil
	}
}

// questionPost is the body of POST /questions: either a search or a create
type questionPost interface {
	questionPost()
}

// SearchQuestionsRequest is a POST /questions body carrying searchTerm
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

func (SearchQuestionsRequest) questionPost() {}

// CreateQuestionRequest is a POST /questions body without searchTerm
type CreateQuestionRequest struct {
	Question   *string     `json:"question" validate:"required"`
	Answer     *string     `json:"answer" validate:"required"`
	Category   *FlexibleID `json:"category" validate:"required,min=1"`
	Difficulty *FlexibleID `json:"difficulty" validate:"required,min=1,max=5"`
}

func (CreateQuestionRequest) questionPost() {}

// parseQuestionPost decodes a POST /questions body. The presence of the
// searchTerm key selects the search variant; anything else is a create.
// An empty body is a create with every field missing.
func parseQuestionPost(body []byte) (questionPost, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return CreateQuestionRequest{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("body is not a JSON object: %w", apperrors.ErrBadRequest)
	}

	if raw, ok := fields["searchTerm"]; ok {
		if len(raw) == 0 || raw[0] != '"' {
			return nil, fmt.Errorf("searchTerm must be a string: %w", apperrors.ErrBadRequest)
		}
		var req SearchQuestionsRequest
		if err := json.Unmarshal(raw, &req.SearchTerm); err != nil {
			return nil, fmt.Errorf("searchTerm must be a string: %w", apperrors.ErrBadRequest)
		}
		return req, nil
	}

	var req CreateQuestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid question: %w", apperrors.ErrBadRequest)
	}
	return req, nil
}

// QuizRequest is the body of POST /quizzes. quiz_category 0 means every
// category.
type QuizRequest struct {
	PreviousQuestions []uint      `json:"previous_questions" validate:"required"`
	QuizCategory      *FlexibleID `json:"quiz_category" validate:"required,min=0"`
}
