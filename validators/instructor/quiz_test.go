package instructorValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizApp() *fiber.App {
	app := fiber.New()
	app.Post("/lesson/:lesson_id/quiz", CreateQuiz(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postQuiz(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func validQuizPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":         "Module checkpoint",
		"passing_score": 70,
		"questions": []map[string]interface{}{
			{
				"question_text": "Is Go statically typed?",
				"question_type": "TRUE_FALSE",
				"points":        1,
				"options": []map[string]interface{}{
					{"option_text": "True", "is_correct": true},
					{"option_text": "False"},
				},
			},
		},
	}
}

func TestCreateQuizValidatorAcceptsValidPayload(t *testing.T) {
	resp := postQuiz(t, quizApp(), "/lesson/5/quiz", validQuizPayload())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateQuizValidatorRejectsBadLessonID(t *testing.T) {
	resp := postQuiz(t, quizApp(), "/lesson/abc/quiz", validQuizPayload())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuizValidatorRejectsEmptyQuestions(t *testing.T) {
	payload := validQuizPayload()
	payload["questions"] = []map[string]interface{}{}
	resp := postQuiz(t, quizApp(), "/lesson/5/quiz", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateQuizValidatorRejectsSingleChoiceWithTwoCorrect(t *testing.T) {
	payload := validQuizPayload()
	payload["questions"] = []map[string]interface{}{
		{
			"question_text": "Pick one",
			"question_type": "SINGLE_CHOICE",
			"points":        1,
			"options": []map[string]interface{}{
				{"option_text": "A", "is_correct": true},
				{"option_text": "B", "is_correct": true},
			},
		},
	}
	resp := postQuiz(t, quizApp(), "/lesson/5/quiz", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateQuizValidatorRejectsUnknownQuestionType(t *testing.T) {
	payload := validQuizPayload()
	payload["questions"] = []map[string]interface{}{
		{
			"question_text": "Essay question",
			"question_type": "FREE_TEXT",
			"points":        1,
		},
	}
	resp := postQuiz(t, quizApp(), "/lesson/5/quiz", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateQuizValidatorRejectsMultiSelectWithoutCorrectOption(t *testing.T) {
	payload := validQuizPayload()
	payload["questions"] = []map[string]interface{}{
		{
			"question_text": "Pick some",
			"question_type": "MULTI_SELECT",
			"points":        2,
			"options": []map[string]interface{}{
				{"option_text": "A"},
				{"option_text": "B"},
			},
		},
	}
	resp := postQuiz(t, quizApp(), "/lesson/5/quiz", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
