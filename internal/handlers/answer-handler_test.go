package handlers

import (
	"learning-service/internal/models"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (e *testEnv) createPage(t *testing.T, adminToken string) models.Page {
	t.Helper()
	resp := e.do(t, "POST", "/modulos", adminToken, fiber.Map{"name": "Passwords"})
	module := decodeBody[models.Module](t, resp)

	resp = e.do(t, "POST", "/paginas", adminToken, fiber.Map{
		"module_id": module.ID.Hex(),
		"name":      "Quiz",
		"type":      models.PageTypeQuiz,
	})
	return decodeBody[models.Page](t, resp)
}

func TestRecordAnswer(t *testing.T) {
	env := newTestEnv()
	admin := env.tokenFor(t, "admin@example.com", true)
	page := env.createPage(t, admin)

	user := env.tokenFor(t, "ana@example.com", false)

	resp := env.do(t, "POST", "/respuestas", user, fiber.Map{
		"page_id": page.ID.Hex(),
		"correct": true,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("record: expected 201, got %d", resp.StatusCode)
	}
	answer := decodeBody[models.Answer](t, resp)
	if answer.PageID != page.ID {
		t.Errorf("answer bound to wrong page: %s", answer.PageID.Hex())
	}
	if !answer.Correct {
		t.Error("correct flag lost")
	}
}

func TestRecordAnswerUnknownPage(t *testing.T) {
	env := newTestEnv()
	user := env.tokenFor(t, "ana@example.com", false)

	resp := env.do(t, "POST", "/respuestas", user, fiber.Map{
		"page_id": bson.NewObjectID().Hex(),
		"correct": false,
	})
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for unknown page, got %d", resp.StatusCode)
	}
}

// Listing answers only ever returns the token owner's rows, whatever other
// users have recorded.
func TestListAnswersScopedToUser(t *testing.T) {
	env := newTestEnv()
	admin := env.tokenFor(t, "admin@example.com", true)
	page := env.createPage(t, admin)

	ana := env.tokenFor(t, "ana@example.com", false)
	luis := env.tokenFor(t, "luis@example.com", false)

	resp := env.do(t, "POST", "/respuestas", ana, fiber.Map{"page_id": page.ID.Hex(), "correct": true})
	resp.Body.Close()
	resp = env.do(t, "POST", "/respuestas", luis, fiber.Map{"page_id": page.ID.Hex(), "correct": false})
	resp.Body.Close()

	resp = env.do(t, "GET", "/respuestas", ana, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	answers := decodeBody[[]models.Answer](t, resp)
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer for ana, got %d", len(answers))
	}
	if !answers[0].Correct {
		t.Error("ana got someone else's answer")
	}
}
