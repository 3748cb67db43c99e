package httpadapter

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api "github.com/alifrahmanhakim/AOC-RBS/internal/api"
	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/ports"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

const (
	defaultWaitTimeout = 30
	maxBodyBytes       = 1 << 20
)

// InlineRunner runs one queued recompute job synchronously.
type InlineRunner interface {
	ProcessInline(ctx context.Context, jobID string) error
}

// Deps are the collaborators the HTTP server routes to.
type Deps struct {
	Engine     *rbs.Engine
	Findings   *findings.Manager
	Operators  ports.Operators
	Profiles   ports.Profiles
	Recomputes ports.Recomputes
	Runner     InlineRunner
	Gatherer   prometheus.Gatherer
	Log        *zap.Logger
}

// Server implements the generated StrictServerInterface.
type Server struct {
	Deps
	validate *validator.Validate
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Server{Deps: d, validate: v}
}

// Routes returns a chi.Router mounting the generated handlers next to
// /metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(s.logRequests)

	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.writeRequestError,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.writeRequestError,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(context.Context, api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) ComputeRbs(_ context.Context, req api.ComputeRbsRequestObject) (api.ComputeRbsResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	b := req.Body
	res, err := s.Engine.ComputeRBS(computeInputs(b.ComplexityFactors, b.ComplianceData, b.DeviationData, b.ImprovementData))
	if err != nil {
		return nil, err
	}
	return api.ComputeRbs200JSONResponse(res), nil
}

func (s *Server) GetSurveillanceCycle(_ context.Context, req api.GetSurveillanceCycleRequestObject) (api.GetSurveillanceCycleResponseObject, error) {
	cell, err := s.Engine.Cell(domain.IndicatorLevel(req.Params.Level), domain.ExposureLevel(req.Params.Exposure))
	if err != nil {
		return nil, err
	}
	return api.GetSurveillanceCycle200JSONResponse{
		CategoryKey: string(cell.Key),
		Months:      cell.Months,
		Zone:        api.CycleZone(cell.Zone),
	}, nil
}

func (s *Server) GetSurveillanceMatrix(context.Context, api.GetSurveillanceMatrixRequestObject) (api.GetSurveillanceMatrixResponseObject, error) {
	return api.GetSurveillanceMatrix200JSONResponse(s.Engine.Matrix()), nil
}

func (s *Server) ComputeLegacyRisk(_ context.Context, req api.ComputeLegacyRiskRequestObject) (api.ComputeLegacyRiskResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	res, err := s.Engine.ComputeLegacyRisk(legacyFactors(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.ComputeLegacyRisk200JSONResponse(res), nil
}

func (s *Server) GetFindingTargetDate(_ context.Context, req api.GetFindingTargetDateRequestObject) (api.GetFindingTargetDateResponseObject, error) {
	added := req.Params.DateAdded
	target, err := s.Findings.TargetDate(added.Time, domain.FindingCategoryLevel(req.Params.Category))
	if err != nil {
		return nil, err
	}
	return api.GetFindingTargetDate200JSONResponse{
		DateAdded:            added,
		FindingCategory:      req.Params.Category,
		TargetCompletionDate: openapi_types.Date{Time: target},
	}, nil
}

func (s *Server) ListSurveillanceAreas(context.Context, api.ListSurveillanceAreasRequestObject) (api.ListSurveillanceAreasResponseObject, error) {
	return api.ListSurveillanceAreas200JSONResponse(surveillanceAreas()), nil
}

func (s *Server) ListOccurrenceCategories(context.Context, api.ListOccurrenceCategoriesRequestObject) (api.ListOccurrenceCategoriesResponseObject, error) {
	return api.ListOccurrenceCategories200JSONResponse(occurrenceCategories()), nil
}

func (s *Server) CreateOperator(ctx context.Context, req api.CreateOperatorRequestObject) (api.CreateOperatorResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	b := req.Body
	in := ports.NewOperator{
		Name:                       b.Name,
		AOCNumber:                  b.AocNumber,
		Category:                   domain.OperatorCategory(b.OperatorCategory),
		HadFatalAccidentLast3Years: b.HadFatalAccidentLast3Years,
	}
	if b.Inputs != nil {
		inputs := operatorInputs(*b.Inputs)
		in.Inputs = &inputs
	}
	op, err := s.Operators.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return api.CreateOperator201JSONResponse(op), nil
}

func (s *Server) ListOperators(ctx context.Context, _ api.ListOperatorsRequestObject) (api.ListOperatorsResponseObject, error) {
	ops, err := s.Operators.List(ctx)
	if err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []domain.Operator{}
	}
	return api.ListOperators200JSONResponse(ops), nil
}

func (s *Server) GetOperator(ctx context.Context, req api.GetOperatorRequestObject) (api.GetOperatorResponseObject, error) {
	op, err := s.Operators.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetOperator200JSONResponse(op), nil
}

func (s *Server) GetOperatorProfile(ctx context.Context, req api.GetOperatorProfileRequestObject) (api.GetOperatorProfileResponseObject, error) {
	prof, err := s.Profiles.GetLatest(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetOperatorProfile200JSONResponse(prof), nil
}

func (s *Server) UpdateOperatorInputs(ctx context.Context, req api.UpdateOperatorInputsRequestObject) (api.UpdateOperatorInputsResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	op, err := s.Operators.UpdateInputs(ctx, req.Id, operatorInputs(*req.Body), req.Body.EffectiveDate)
	if err != nil {
		return nil, err
	}
	return api.UpdateOperatorInputs200JSONResponse(op), nil
}

func (s *Server) AddFinding(ctx context.Context, req api.AddFindingRequestObject) (api.AddFindingResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	f, err := s.Operators.AddFinding(ctx, req.Id, newFinding(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.AddFinding201JSONResponse(f), nil
}

// CompleteFinding closes a finding today unless the body names another
// completion date.
func (s *Server) CompleteFinding(ctx context.Context, req api.CompleteFindingRequestObject) (api.CompleteFindingResponseObject, error) {
	var at time.Time
	if req.Body != nil && req.Body.ActualCompletionDate != nil {
		at = *req.Body.ActualCompletionDate
	}
	f, err := s.Operators.CompleteFinding(ctx, req.Id, req.FindingId, at)
	if err != nil {
		return nil, err
	}
	return api.CompleteFinding200JSONResponse(f), nil
}

func (s *Server) ReopenFinding(ctx context.Context, req api.ReopenFindingRequestObject) (api.ReopenFindingResponseObject, error) {
	f, err := s.Operators.ReopenFinding(ctx, req.Id, req.FindingId)
	if err != nil {
		return nil, err
	}
	return api.ReopenFinding200JSONResponse(f), nil
}

func (s *Server) UpdateSurveillanceLog(ctx context.Context, req api.UpdateSurveillanceLogRequestObject) (api.UpdateSurveillanceLogResponseObject, error) {
	if err := s.check(req.Body); err != nil {
		return nil, err
	}
	item, err := s.Operators.UpdateSurveillanceLog(ctx, req.Id, req.AreaId,
		domain.SurveillanceLogStatus(req.Body.Status), req.Body.Notes)
	if err != nil {
		return nil, err
	}
	return api.UpdateSurveillanceLog200JSONResponse(item), nil
}

func (s *Server) GetOperatorHistory(ctx context.Context, req api.GetOperatorHistoryRequestObject) (api.GetOperatorHistoryResponseObject, error) {
	entries, err := s.Operators.History(ctx, req.Id, deref(req.Params.From), deref(req.Params.To))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.RiskIndicatorHistoryEntry{}
	}
	return api.GetOperatorHistory200JSONResponse(entries), nil
}

// RecomputeOperator queues a recompute. With wait=true the job is run
// inline and its final state returned.
func (s *Server) RecomputeOperator(ctx context.Context, req api.RecomputeOperatorRequestObject) (api.RecomputeOperatorResponseObject, error) {
	jobID, err := s.Recomputes.Enqueue(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Params.Wait == nil || !*req.Params.Wait {
		return api.RecomputeOperator202JSONResponse{JobId: jobID}, nil
	}
	seconds := defaultWaitTimeout
	if req.Params.Timeout != nil && *req.Params.Timeout > 0 {
		seconds = *req.Params.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
	defer cancel()
	if err := s.Runner.ProcessInline(ctx, jobID); err != nil {
		return nil, err
	}
	job, err := s.Recomputes.Status(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return api.RecomputeOperator200JSONResponse(job), nil
}

func (s *Server) GetRecomputeJob(ctx context.Context, req api.GetRecomputeJobRequestObject) (api.GetRecomputeJobResponseObject, error) {
	job, err := s.Recomputes.Status(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetRecomputeJob200JSONResponse(job), nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
