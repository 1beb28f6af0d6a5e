package ports

import (
	"context"

	"github.com/gigamonkey/scheduler/internal/timetable"
)

type ScheduleRepository interface {
	Load(ctx context.Context) (timetable.Definition, error)
}
