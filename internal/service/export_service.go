package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
	"github.com/noah-isme/drivingschool-api/pkg/export"
)

type hoursSource interface {
	Hours(ctx context.Context, filter models.HoursFilter) ([]dto.HoursRow, error)
}

// ExportResult is a rendered document ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the hours view as a downloadable document.
type ExportService struct {
	hours  hoursSource
	now    Clock
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(hours hoursSource, now Clock, logger *zap.Logger) *ExportService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{hours: hours, now: now, logger: logger}
}

var hoursHeaders = []string{
	"Estudiante", "Licencia", "Instructor",
	"Horas teóricas", "Horas prácticas", "Progreso (%)", "Estado",
}

// Hours renders the filtered hours view in the requested format (csv or pdf).
func (s *ExportService) Hours(ctx context.Context, format string, filter models.HoursFilter) (*ExportResult, error) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.InvalidArgument("%s", err.Error())
	}
	rows, err := s.hours.Hours(ctx, filter)
	if err != nil {
		return nil, err
	}

	today := s.now.today()
	dataset := export.Dataset{
		Title:   fmt.Sprintf("Progreso de horas - %s", today),
		Headers: hoursHeaders,
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, []string{
			row.FullName,
			string(row.LicenseType),
			row.Instructor,
			fmt.Sprintf("%d/%d", row.TheoreticalDone, row.TheoreticalReq),
			fmt.Sprintf("%d/%d", row.PracticalDone, row.PracticalReq),
			strconv.Itoa(row.Progress.Overall),
			string(row.Band),
		})
	}

	body, err := exporter.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("hours export rendered",
		zap.String("format", exporter.Extension()),
		zap.Int("rows", len(rows)),
		zap.Int("bytes", len(body)),
	)
	return &ExportResult{
		Filename:    fmt.Sprintf("horas-%s.%s", today, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}
