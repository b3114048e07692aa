package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fittrack/fitness-tracker/internal/api/metrics"
	"github.com/fittrack/fitness-tracker/internal/core/ports"
)

// EntryHandler handles HTTP requests for workout entries. Every operation is
// scoped to the user id bound by the Auth middleware; ids supplied in request
// bodies are never trusted.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create handles POST /api/entries.
//
// @Summary      Log a workout entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEntryRequest  true  "Workout details"
// @Success      201   {object}  entryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues(entry.ActivityName).Inc()
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// List handles GET /api/entries — all of the user's entries, most recent
// activity date first.
//
// @Summary      List workout entries
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entryResponse
// @Failure      401  {object}  errorResponse
// @Router       /entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryListResponse(entries))
}

// Get handles GET /api/entries/:id.
//
// @Summary      Get a workout entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  entryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /entries/{id} [get]
func (h *EntryHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// Update handles PUT and PATCH /api/entries/:id. Both verbs apply the same
// partial-merge semantics; calories are re-derived server-side.
//
// @Summary      Update a workout entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Entry id"
// @Param        body  body      updateEntryRequest  true  "Fields to change"
// @Success      200   {object}  entryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/entries/:id.
//
// @Summary      Delete a workout entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  deleteEntryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteEntryResponse{Message: "Entry deleted successfully"})
}
