package inventory

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jekabolt/stockroom/internal/dto"
	"github.com/jekabolt/stockroom/internal/entity"
)

// dashboardRangeInput reads the chart bounds. initalDate is the spelling
// older clients send and is used when initialDate is missing.
func dashboardRangeInput(r *http.Request) entity.DateRangeInput {
	q := r.URL.Query()
	initial := q.Get("initialDate")
	if initial == "" {
		initial = q.Get("initalDate")
	}
	return entity.DateRangeInput{
		InitialDate: initial,
		LastDate:    q.Get("lastDate"),
	}
}

// getDashboard answers with the chart series, or with the error message as a
// bare JSON string and status 400. Panics are answered the same way.
func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer func() {
		if rec := recover(); rec != nil {
			slog.Default().ErrorContext(ctx, "dashboard chart panicked",
				slog.Any("panic", rec),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, fmt.Sprint(rec))
		}
	}()
	points, err := s.dashboard.Chart(ctx, dashboardRangeInput(r))
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build dashboard chart",
			slog.String("err", err.Error()),
		)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, err.Error())
		return
	}
	render.JSON(w, r, dto.ConvertEntityChartPoints(points))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "store ping failed",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, &HealthResponse{
			HTTPStatusCode: http.StatusServiceUnavailable,
			Status:         "unavailable",
			Message:        err.Error(),
		})
		return
	}
	render.Render(w, r, &HealthResponse{HTTPStatusCode: http.StatusOK, Status: "ok"})
}
