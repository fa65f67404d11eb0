package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tvpalette/palette-api/internal/api/metrics"
	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/core/ports"
)

type PaletteHandler struct {
	service ports.PaletteService
}

func NewPaletteHandler(service ports.PaletteService) *PaletteHandler {
	return &PaletteHandler{service: service}
}

// Fetch returns the caller's palette, or null when they own none.
//
// @Summary      Fetch the caller's palette
// @Tags         palette
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Palette
// @Failure      401  {object}  map[string]string
// @Router       /fetch-palette [get]
func (h *PaletteHandler) Fetch(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	defer observe("fetch", time.Now(), &err)
	p, err := h.service.FetchPalette(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create inserts a new palette for the caller seeded with one example program.
//
// @Summary      Create a seeded palette
// @Tags         palette
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  createPaletteResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth-endpoint-post [post]
func (h *PaletteHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ex := domain.ExampleProgram()
	seed := []ports.ProgramInput{{
		Filename: ex.Filename,
		Duration: ports.DurationInput{Minutes: ex.Duration.Minutes, Seconds: ex.Duration.Seconds},
		Category: ex.Category,
	}}

	defer observe("create", time.Now(), &err)
	p, err := h.service.CreatePalette(c.Request().Context(), id.UserID, seed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createPaletteResponse{Message: authorizedMessage, Palette: p})
}

// PrependProgram puts one program at the head of the caller's list.
//
// @Summary      Prepend a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      programRequest  true  "Program fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth-endpoint-post [put]
func (h *PaletteHandler) PrependProgram(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req programRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}

	defer observe("prepend_program", time.Now(), &err)
	if err = h.service.ReplaceProgramsFront(c.Request().Context(), id.UserID, req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: authorizedMessage})
}

// AddProgram appends a program to the palette.
//
// @Summary      Add a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        paletteId  path      string             true  "Palette id"
// @Param        body       body      addProgramRequest  true  "New program"
// @Success      200        {object}  domain.Palette
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /{paletteId}/programs [post]
func (h *PaletteHandler) AddProgram(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req addProgramRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	prog := req.program()
	if err := c.Validate(prog); err != nil {
		return err
	}

	var err error
	defer observe("add_program", time.Now(), &err)
	p, err := h.service.AddProgram(c.Request().Context(), c.Param("paletteId"), prog.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// EditProgram overwrites the fields of one program and returns the store ack.
//
// @Summary      Edit a program
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        paletteId  path      string              true  "Palette id"
// @Param        progId     path      string              true  "Program id"
// @Param        body       body      editProgramRequest  true  "Updated program"
// @Success      200        {object}  domain.UpdateAck
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /{paletteId}/edit/{progId} [put]
func (h *PaletteHandler) EditProgram(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req editProgramRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	prog := req.program()
	if err := c.Validate(prog); err != nil {
		return err
	}

	var err error
	defer observe("edit_program", time.Now(), &err)
	ack, err := h.service.EditProgram(c.Request().Context(), c.Param("paletteId"), c.Param("progId"), prog.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// DeleteProgram removes a program from the palette.
//
// @Summary      Delete a program
// @Tags         programs
// @Security     BearerAuth
// @Param        paletteId  path  string  true  "Palette id"
// @Param        programId  path  string  true  "Program id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /{paletteId}/programs/{programId} [delete]
func (h *PaletteHandler) DeleteProgram(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var err error
	defer observe("delete_program", time.Now(), &err)
	if err = h.service.DeleteProgram(c.Request().Context(), c.Param("paletteId"), c.Param("programId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// InsertCategory adds a category unless one with the same name exists.
//
// @Summary      Insert a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        paletteId  path      string                 true  "Palette id"
// @Param        body       body      insertCategoryRequest  true  "New category"
// @Success      200        {object}  domain.Palette
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /{paletteId}/insert-new-category [post]
func (h *PaletteHandler) InsertCategory(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req insertCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	cat := req.category()
	if err := c.Validate(cat); err != nil {
		return err
	}

	var err error
	defer observe("insert_category", time.Now(), &err)
	p, err := h.service.InsertCategory(c.Request().Context(), c.Param("paletteId"), cat.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteCategory removes the category with the given id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        paletteId   path      string  true  "Palette id"
// @Param        categoryId  path      string  true  "Category id"
// @Success      200         {object}  domain.Palette
// @Failure      400         {object}  map[string]string
// @Failure      401         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /{paletteId}/delete-category/{categoryId} [delete]
func (h *PaletteHandler) DeleteCategory(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var err error
	defer observe("delete_category", time.Now(), &err)
	p, err := h.service.DeleteCategory(c.Request().Context(), c.Param("paletteId"), c.Param("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// observe records the outcome and latency of a palette operation. err is
// read when the deferred call runs.
func observe(op string, start time.Time, err *error) {
	metrics.PaletteOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.PaletteOperationsTotal.WithLabelValues(op, metrics.Result(*err)).Inc()
}
