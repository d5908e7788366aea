package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository/mocks"
)

// QuestionHandlerTestSuite is the test suite for QuestionHandler
type QuestionHandlerTestSuite struct {
	suite.Suite
	echo         *echo.Echo
	handler      *QuestionHandler
	questionRepo *mocks.MockQuestionRepository
	categoryRepo *mocks.MockCategoryRepository
}

// SetupTest runs before each test
func (s *QuestionHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho()
	s.questionRepo = new(mocks.MockQuestionRepository)
	s.categoryRepo = new(mocks.MockCategoryRepository)
	s.handler = NewQuestionHandler(s.questionRepo, s.categoryRepo, nil)
}

// TearDownTest runs after each test
func (s *QuestionHandlerTestSuite) TearDownTest() {
	s.questionRepo.AssertExpectations(s.T())
	s.categoryRepo.AssertExpectations(s.T())
}

func TestQuestionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuestionHandlerTestSuite))
}

func (s *QuestionHandlerTestSuite) decodeQuestions(body []byte) QuestionsResponse {
	var resp QuestionsResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	return resp
}

// ==================== List ====================

func (s *QuestionHandlerTestSuite) TestList_FirstPageByDefault() {
	s.questionRepo.On("List", mock.Anything, 10, 0).Return(testQuestions(10), int64(19), nil)
	s.categoryRepo.On("List", mock.Anything).Return(testCategories(), nil)

	c, rec := createContext(s.echo, http.MethodGet, "/questions", "")
	err := s.handler.List(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeQuestions(rec.Body.Bytes())
	s.True(resp.Success)
	s.Len(resp.Questions, 10)
	s.Equal(int64(19), resp.TotalQuestions)
	s.Equal("Science", resp.Categories["1"])
	s.Nil(resp.CurrentCategory)
}

func (s *QuestionHandlerTestSuite) TestList_SecondPageOffsets() {
	s.questionRepo.On("List", mock.Anything, 10, 10).Return(testQuestions(9), int64(19), nil)
	s.categoryRepo.On("List", mock.Anything).Return(testCategories(), nil)

	c, rec := createContext(s.echo, http.MethodGet, "/questions?page=2", "")
	err := s.handler.List(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(s.decodeQuestions(rec.Body.Bytes()).Questions, 9)
}

func (s *QuestionHandlerTestSuite) TestList_PageBeyondRange() {
	s.questionRepo.On("List", mock.Anything, 10, 9990).Return([]models.Question{}, int64(19), nil)

	c, rec := createContext(s.echo, http.MethodGet, "/questions?page=1000", "")
	err := s.handler.List(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	resp, err := parseErrorResponse(rec)
	s.NoError(err)
	s.Equal("Resource not found", resp.Message)
}

func (s *QuestionHandlerTestSuite) TestList_PageBelowOne() {
	for _, page := range []string{"0", "-3"} {
		c, rec := createContext(s.echo, http.MethodGet, "/questions?page="+page, "")
		s.NoError(s.handler.List(c))
		s.Equal(http.StatusNotFound, rec.Code, "page=%s", page)
	}
}

func (s *QuestionHandlerTestSuite) TestList_NonIntegerPage() {
	c, rec := createContext(s.echo, http.MethodGet, "/questions?page=two", "")
	err := s.handler.List(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	resp, err := parseErrorResponse(rec)
	s.NoError(err)
	s.Equal("Bad request", resp.Message)
}

func (s *QuestionHandlerTestSuite) TestList_StoreError() {
	s.questionRepo.On("List", mock.Anything, 10, 0).Return(nil, int64(0), errors.New("connection refused"))

	c, rec := createContext(s.echo, http.MethodGet, "/questions", "")
	s.NoError(s.handler.List(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ==================== Delete ====================

func (s *QuestionHandlerTestSuite) TestDelete_Success() {
	s.questionRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

	c, rec := createContext(s.echo, http.MethodDelete, "/questions/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	err := s.handler.Delete(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"deleted":5}`, rec.Body.String())
}

func (s *QuestionHandlerTestSuite) TestDelete_NotFound() {
	s.questionRepo.On("Delete", mock.Anything, uint(9999)).
		Return(fmt.Errorf("question 9999: %w", repository.ErrNotFound))

	c, rec := createContext(s.echo, http.MethodDelete, "/questions/9999", "")
	c.SetParamNames("id")
	c.SetParamValues("9999")
	err := s.handler.Delete(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *QuestionHandlerTestSuite) TestDelete_InvalidID() {
	c, rec := createContext(s.echo, http.MethodDelete, "/questions/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := s.handler.Delete(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== Search ====================

func (s *QuestionHandlerTestSuite) TestPost_SearchReturnsMatches() {
	s.questionRepo.On("Search", mock.Anything, "was").Return(testQuestions(4), nil)

	c, rec := createContext(s.echo, http.MethodPost, "/questions", `{"searchTerm":"was"}`)
	err := s.handler.Post(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	resp := s.decodeQuestions(rec.Body.Bytes())
	s.True(resp.Success)
	s.Len(resp.Questions, 4)
	s.Equal(int64(4), resp.TotalQuestions)
	s.Nil(resp.CurrentCategory)
}

func (s *QuestionHandlerTestSuite) TestPost_SearchNoMatches() {
	s.questionRepo.On("Search", mock.Anything, "zzzzqqq").Return([]models.Question{}, nil)

	c, rec := createContext(s.echo, http.MethodPost, "/questions", `{"searchTerm":"zzzzqqq"}`)
	err := s.handler.Post(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"questions":[],"total_questions":0,"current_category":null}`, rec.Body.String())
}

func (s *QuestionHandlerTestSuite) TestPost_SearchIgnoresOtherFields() {
	s.questionRepo.On("Search", mock.Anything, "title").Return([]models.Question{}, nil)

	body := `{"searchTerm":"title","question":"ignored","answer":"ignored"}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *QuestionHandlerTestSuite) TestPost_SearchUsesRawTerm() {
	s.questionRepo.On("Search", mock.Anything, " was ").Return([]models.Question{}, nil)

	c, rec := createContext(s.echo, http.MethodPost, "/questions", `{"searchTerm":" was "}`)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *QuestionHandlerTestSuite) TestPost_SearchTermNull() {
	c, rec := createContext(s.echo, http.MethodPost, "/questions", `{"searchTerm":null}`)
	s.NoError(s.handler.Post(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.questionRepo.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *QuestionHandlerTestSuite) TestPost_SearchTermNotString() {
	c, rec := createContext(s.echo, http.MethodPost, "/questions", `{"searchTerm":42}`)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ==================== Create ====================

func (s *QuestionHandlerTestSuite) TestPost_CreateSuccess() {
	s.categoryRepo.On("GetByID", mock.Anything, uint(3)).Return(&models.Category{ID: 3, Type: "Geography"}, nil)
	s.questionRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
		return q.Question == "Capital of Peru?" && q.Answer == "Lima" && q.CategoryID == 3 && q.Difficulty == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Question).ID = 24
	}).Return(nil)

	body := `{"question":"Capital of Peru?","answer":"Lima","category":3,"difficulty":2}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	err := s.handler.Post(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"created":24}`, rec.Body.String())
}

func (s *QuestionHandlerTestSuite) TestPost_CreateStoresTextAsSubmitted() {
	s.categoryRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.Category{ID: 2, Type: "Art"}, nil)
	s.questionRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
		return q.Question == "  Line one\nLine two\tend?  " && q.Answer == " A "
	})).Return(nil)

	body := `{"question":"  Line one\nLine two\tend?  ","answer":" A ","category":2,"difficulty":1}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *QuestionHandlerTestSuite) TestPost_CreateAcceptsStringIDs() {
	s.categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Category{ID: 1, Type: "Science"}, nil)
	s.questionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).Return(nil)

	body := `{"question":"Q?","answer":"A","category":"1","difficulty":"4"}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *QuestionHandlerTestSuite) TestPost_CreateMissingFields() {
	bodies := []string{
		``,
		`{}`,
		`{"question":"Q?","answer":"A","category":1}`,
		`{"question":"Q?","category":1,"difficulty":1}`,
		`{"answer":"A","category":1,"difficulty":1}`,
		`{"question":"Q?","answer":"A","difficulty":1}`,
	}

	for _, body := range bodies {
		c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
		s.NoError(s.handler.Post(c))
		s.Equal(http.StatusBadRequest, rec.Code, "body: %s", body)
		resp, err := parseErrorResponse(rec)
		s.NoError(err)
		s.False(resp.Success)
		s.Equal("Bad request", resp.Message)
	}
}

func (s *QuestionHandlerTestSuite) TestPost_CreateInvalidValues() {
	bodies := []string{
		`{"question":"","answer":"A","category":1,"difficulty":1}`,
		`{"question":"Q?","answer":"   ","category":1,"difficulty":1}`,
		`{"question":"Q?","answer":"A","category":1,"difficulty":6}`,
		`{"question":"Q?","answer":"A","category":0,"difficulty":1}`,
		`{"question":"Q?","answer":"A","category":"science","difficulty":1}`,
		`not json`,
	}

	for _, body := range bodies {
		c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
		s.NoError(s.handler.Post(c))
		s.Equal(http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func (s *QuestionHandlerTestSuite) TestPost_CreateUnknownCategory() {
	s.categoryRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	body := `{"question":"Q?","answer":"A","category":99,"difficulty":1}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	s.NoError(s.handler.Post(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.questionRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *QuestionHandlerTestSuite) TestPost_CreateStoreError() {
	s.categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.Category{ID: 1, Type: "Science"}, nil)
	s.questionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).Return(errors.New("disk full"))

	body := `{"question":"Q?","answer":"A","category":1,"difficulty":1}`
	c, rec := createContext(s.echo, http.MethodPost, "/questions", body)
	s.NoError(s.handler.Post(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
