package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

func TestCalendarService_ModuleCalendar(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewCalendarService(repo, zap.NewNop())
	ctx := context.Background()

	_ = m.modules.Create(ctx, &model.Module{ModuleCode: "CMPG323", ModuleName: "Software Engineering"})
	due := time.Date(2026, 10, 20, 23, 59, 0, 0, time.UTC)
	_ = m.assignments.Create(ctx, &model.Assignment{Title: "Sprint demo", Instructions: "Record a 5 minute demo", DueDate: due, ModuleID: 1})
	_ = m.assignments.Create(ctx, &model.Assignment{Title: "Other module", DueDate: due, ModuleID: 2})

	out, err := svc.ModuleCalendar(ctx, 1)
	if err != nil {
		t.Fatalf("ModuleCalendar should succeed: %v", err)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("output should parse as iCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.Id() != "assignment-1@hms" {
		t.Errorf("unexpected UID %q", ev.Id())
	}
	if p := ev.GetProperty(ics.ComponentPropertySummary); p == nil || p.Value != "CMPG323: Sprint demo due" {
		t.Errorf("unexpected summary: %v", p)
	}
	end, err := ev.GetEndAt()
	if err != nil || !end.Equal(due) {
		t.Errorf("event should end at the due date, got %v (%v)", end, err)
	}
	start, err := ev.GetStartAt()
	if err != nil || !start.Equal(due.Add(-time.Hour)) {
		t.Errorf("event should start an hour before the due date, got %v (%v)", start, err)
	}
}

func TestCalendarService_ModuleNotFound(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewCalendarService(repo, zap.NewNop())

	if _, err := svc.ModuleCalendar(context.Background(), 3); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("expected ErrModuleNotFound, got: %v", err)
	}
}
