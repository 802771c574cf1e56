package routes

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gofiber/fiber/v2"
)

func TestFeatures(t *testing.T) {
	options := godog.Options{
		Format:    "progress",
		Paths:     []string{filepath.Join("features")},
		Output:    io.Discard,
		TestingT:  t,
		Randomize: 0,
	}

	suite := godog.TestSuite{
		Name: "trivia-api",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			initializeScenario(sc, t)
		},
		Options: &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("feature scenarios failed")
	}
}

type apiState struct {
	t    *testing.T
	app  *fiber.App
	last response
}

func initializeScenario(ctx *godog.ScenarioContext, t *testing.T) {
	state := &apiState{t: t}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.app = nil
		state.last = response{}
		return ctx, nil
	})

	ctx.Step(`^a trivia store seeded with the sample questions$`, state.aSeededStore)
	ctx.Step(`^I send "([A-Z]+)" to "([^"]+)"$`, state.iSend)
	ctx.Step(`^I send "([A-Z]+)" to "([^"]+)" with body:$`, state.iSendWithBody)
	ctx.Step(`^the response status is (\d+)$`, state.theResponseStatusIs)
	ctx.Step(`^the response field "([^"]+)" is (true|false)$`, state.theResponseFieldIsBool)
	ctx.Step(`^the response field "([^"]+)" equals "([^"]*)"$`, state.theResponseFieldEqualsString)
	ctx.Step(`^the response field "([^"]+)" equals (\d+)$`, state.theResponseFieldEqualsNumber)
	ctx.Step(`^the response list "([^"]+)" has (\d+) items?$`, state.theResponseListHas)
}

func (s *apiState) aSeededStore() error {
	s.app = newTestApp(s.t)
	return nil
}

func (s *apiState) iSend(method, path string) error {
	return s.send(method, path, nil)
}

func (s *apiState) iSendWithBody(method, path string, body *godog.DocString) error {
	return s.send(method, path, []byte(body.Content))
}

func (s *apiState) send(method, path string, body []byte) error {
	if s.app == nil {
		return fmt.Errorf("no store has been set up")
	}
	resp, err := send(s.app, method, path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	s.last = resp
	return nil
}

func (s *apiState) theResponseStatusIs(code int) error {
	if s.last.status != code {
		return fmt.Errorf("status = %d, want %d (body %v)", s.last.status, code, s.last.body)
	}
	return nil
}

// field resolves dotted paths such as "question.id" inside the last body.
func (s *apiState) field(path string) (any, error) {
	var current any = s.last.body
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %v is not an object", path, current)
		}
		if current, ok = obj[key]; !ok {
			return nil, fmt.Errorf("%s: field %q missing in %v", path, key, obj)
		}
	}
	return current, nil
}

func (s *apiState) theResponseFieldIsBool(path, want string) error {
	got, err := s.field(path)
	if err != nil {
		return err
	}
	if b, ok := got.(bool); !ok || strconv.FormatBool(b) != want {
		return fmt.Errorf("%s = %v, want %s", path, got, want)
	}
	return nil
}

func (s *apiState) theResponseFieldEqualsString(path, want string) error {
	got, err := s.field(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%s = %v, want %q", path, got, want)
	}
	return nil
}

func (s *apiState) theResponseFieldEqualsNumber(path string, want int) error {
	got, err := s.field(path)
	if err != nil {
		return err
	}
	if n, ok := got.(float64); !ok || int(n) != want {
		return fmt.Errorf("%s = %v, want %d", path, got, want)
	}
	return nil
}

func (s *apiState) theResponseListHas(path string, want int) error {
	got, err := s.field(path)
	if err != nil {
		return err
	}
	items, ok := got.([]any)
	if !ok {
		return fmt.Errorf("%s = %v, want a list", path, got)
	}
	if len(items) != want {
		return fmt.Errorf("%s has %d items, want %d", path, len(items), want)
	}
	return nil
}
