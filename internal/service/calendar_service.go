package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

const calendarProductID = "-//NWU//HMS Assignments//EN"

// CalendarService iCalendar feeds of assignment due dates
type CalendarService interface {
	// ModuleCalendar one VEVENT per assignment of the module, ending at its due date
	ModuleCalendar(ctx context.Context, moduleID int) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) ModuleCalendar(ctx context.Context, moduleID int) (string, error) {
	module, err := s.repo.Module.GetByID(ctx, moduleID)
	if err := ensureExists(err, ErrModuleNotFound); err != nil {
		if pkgerrors.KindOf(err) == pkgerrors.KindDownstream {
			s.logger.Error("loading module for calendar failed", zap.Int("module_id", moduleID), zap.Error(err))
			return "", pkgerrors.Downstream("Error building calendar", err)
		}
		return "", err
	}

	assignments, err := s.repo.Assignment.ListByModule(ctx, moduleID)
	if err != nil {
		s.logger.Error("listing assignments for calendar failed", zap.Int("module_id", moduleID), zap.Error(err))
		return "", pkgerrors.Downstream("Error building calendar", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(fmt.Sprintf("%s %s", module.ModuleCode, module.ModuleName))

	now := time.Now().UTC()
	for _, a := range assignments {
		event := cal.AddEvent(fmt.Sprintf("assignment-%d@hms", a.AssignmentID))
		event.SetSummary(fmt.Sprintf("%s: %s due", module.ModuleCode, a.Title))
		if desc := strings.TrimSpace(a.Instructions); desc != "" {
			event.SetDescription(desc)
		}
		// zero-length events are dropped by some clients
		event.SetStartAt(a.DueDate.UTC().Add(-time.Hour))
		event.SetEndAt(a.DueDate.UTC())
		event.SetDtStampTime(now)
		if !a.CreatedAt.IsZero() {
			event.SetCreatedTime(a.CreatedAt.UTC())
		}
	}

	return cal.Serialize(), nil
}
