package form

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fireReport/internal/domain"
	"fireReport/internal/middleware"
	"fireReport/internal/render"
	"fireReport/internal/report"
	"fireReport/internal/store"
	"fireReport/pkg/e"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type FormEditor interface {
	State(ctx context.Context) store.State
	Section(ctx context.Context, section domain.Section) (any, error)
	UpdateSection(ctx context.Context, section domain.Section, raw []byte) error
	AddItem(ctx context.Context, section domain.Section, raw []byte) (uuid.UUID, error)
	RemoveItem(ctx context.Context, section domain.Section, id uuid.UUID) error
	Undo(ctx context.Context) (store.State, error)
	Redo(ctx context.Context) (store.State, error)
	Reset(ctx context.Context, confirmed bool) error
	SetStep(ctx context.Context, step domain.Step) error
	Validate(ctx context.Context) domain.ValidationResult
	CheckField(ctx context.Context, req domain.FieldCheckRequest) (domain.FieldCheckResponse, error)
}

type ReportMaker interface {
	Generate(ctx context.Context) ([]byte, domain.ValidationResult, error)
	Preview(ctx context.Context) (report.Report, domain.ValidationResult)
}

type LocationFinder interface {
	SearchAddress(ctx context.Context, address string) (domain.LocationResponse, error)
	Pin(ctx context.Context, p domain.LatLng) (domain.LocationResponse, error)
}

type PageRenderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

type Handler struct {
	logger   *slog.Logger
	Form     FormEditor
	Reports  ReportMaker
	Locator  LocationFinder
	Renderer PageRenderer
}

func NewHandler(logger *slog.Logger, form FormEditor, reports ReportMaker, locator LocationFinder, renderer PageRenderer) *Handler {
	return &Handler{
		logger:   logger,
		Form:     form,
		Reports:  reports,
		Locator:  locator,
		Renderer: renderer,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) FormDocument(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Form.State(r.Context()))
}

func (h *Handler) FormSectionGet(w http.ResponseWriter, r *http.Request) {
	section := domain.Section(chi.URLParam(r, "section"))

	v, err := h.Form.Section(r.Context(), section)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) FormSectionUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	section := domain.Section(chi.URLParam(r, "section"))
	l.Debug("FormSectionUpdate", slog.String("section", string(section)))

	body, err := middleware.ReadBody(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Form.UpdateSection(r.Context(), section, body); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FormItemAdd(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	section := domain.Section(chi.URLParam(r, "section"))
	l.Debug("FormItemAdd", slog.String("section", string(section)))

	body, err := middleware.ReadBody(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	id, err := h.Form.AddItem(r.Context(), section, body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("item added", slog.String("section", string(section)), slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, domain.AddItemResponse{ID: id.String()})
}

func (h *Handler) FormItemRemove(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	section := domain.Section(chi.URLParam(r, "section"))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Form.RemoveItem(r.Context(), section, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FormUndo(w http.ResponseWriter, r *http.Request) {
	state, err := h.Form.Undo(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

func (h *Handler) FormRedo(w http.ResponseWriter, r *http.Request) {
	state, err := h.Form.Redo(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

func (h *Handler) FormReset(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Form.Reset(r.Context(), req.Confirm); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FormStep(w http.ResponseWriter, r *http.Request) {
	var req domain.StepRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Form.SetStep(r.Context(), req.Step); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) FormValidate(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Form.Validate(r.Context()))
}

func (h *Handler) FormFieldCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.FieldCheckRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Form.CheckField(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) FormReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	pdf, res, err := h.Reports.Generate(r.Context())
	if errors.Is(err, e.ErrDocumentInvalid) {
		l.Info("report refused", slog.Int("errors", len(res.Errors)))
		h.writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		l.Warn("write report failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) FormPreview(w http.ResponseWriter, r *http.Request) {
	rep, res := h.Reports.Preview(r.Context())

	if err := h.Renderer.Render(w, "preview.html", render.PreviewData{Report: rep, Validation: res}); err != nil {
		h.handleError(w, r, err)
	}
}

func (h *Handler) LocationSearch(w http.ResponseWriter, r *http.Request) {
	var req domain.AddressSearchRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Locator.SearchAddress(r.Context(), req.Address)
	if err != nil {
		h.handleGeoError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) LocationPin(w http.ResponseWriter, r *http.Request) {
	var req domain.PinRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Locator.Pin(r.Context(), domain.LatLng{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.handleGeoError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
