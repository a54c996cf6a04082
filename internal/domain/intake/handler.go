package intake

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marcellina/marcellina/internal/domain/patient"
)

// Handler exposes the wizard over HTTP. Each stage action is its own route;
// the session id in the path selects the wizard instance.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sessions", h.StartSession)
	api.GET("/sessions/:id", h.GetSession)
	api.POST("/sessions/:id/professional", h.SubmitProfessional)
	api.POST("/sessions/:id/patient", h.SubmitPatientForm)
	api.POST("/sessions/:id/patient/confirm", h.ConfirmCandidate)
	api.POST("/sessions/:id/patient/edit", h.EditCandidate)
	api.POST("/sessions/:id/review/continue", h.ContinueWithPatient)
	api.POST("/sessions/:id/review/register-new", h.RegisterNewPatient)
	api.POST("/sessions/:id/back", h.Back)
	api.POST("/sessions/:id/messages", h.SendMessage)
}

type professionalRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Role     string `json:"role"`
}

type patientFormRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Sex     string `json:"sex"`
	History string `json:"history"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) StartSession(c echo.Context) error {
	return c.JSON(http.StatusCreated, h.svc.Start())
}

func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) SubmitProfessional(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req professionalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.SubmitProfessional(c.Request().Context(), sess, req.Name, req.Category, req.Role); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) SubmitPatientForm(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req patientFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sex, err := patient.ParseSex(req.Sex)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form := PatientForm{
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Sex:     sex,
		History: strings.TrimSpace(req.History),
	}
	if err := h.svc.SubmitPatientForm(c.Request().Context(), sess, form); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) ConfirmCandidate(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := h.svc.ConfirmCandidate(c.Request().Context(), sess); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) EditCandidate(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := h.svc.EditCandidate(sess); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) ContinueWithPatient(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := h.svc.ContinueWithPatient(sess); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) RegisterNewPatient(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := h.svc.RegisterNewPatient(c.Request().Context(), sess); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Back(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err := h.svc.Back(sess); err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) SendMessage(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	reply, err := h.svc.SendMessage(c.Request().Context(), sess, req.Text)
	if err != nil {
		return transitionError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Reply: reply})
}

// transitionError maps wrong-stage attempts to 409 and rejected input to 400.
// Anything else escaped the repositories and is an environment failure.
func transitionError(err error) error {
	switch {
	case errors.Is(err, ErrWrongStage):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
