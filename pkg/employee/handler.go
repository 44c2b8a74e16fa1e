package employee

import (
	"errors"
	"net/http"
	"time"

	"github.com/ggicci/httpin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type Handler struct {
	employeeService *EmployeeService
}

func NewHandler(employeeService *EmployeeService) *Handler {
	return &Handler{employeeService: employeeService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(httpin.NewInput(ListEmployeesInput{})).Get("/", h.handleList)
		r.With(httpin.NewInput(CreateEmployeeInput{})).Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.With(httpin.NewInput(UpdateEmployeeInput{})).Put("/{id}", h.handleUpdate)
		r.Post("/{id}/exit", h.handleExit)
	})
}

type EmployeePayload struct {
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Department            string    `json:"department"`
	Designation           string    `json:"designation"`
	DateOfBirth           time.Time `json:"date_of_birth"`
	JoiningDate           time.Time `json:"joining_date"`
	PersonalEmail         string    `json:"personal_email"`
	WorkEmail             string    `json:"work_email"`
	ReportingManagerEmail string    `json:"reporting_manager_email"`
}

type CreateEmployeeInput struct {
	Payload *EmployeePayload `in:"body=json"`
}

type UpdateEmployeeInput struct {
	Payload *EmployeePayload `in:"body=json"`
}

type ListEmployeesInput struct {
	Search string `in:"query=search"`
	Status string `in:"query=status"`
	Limit  int32  `in:"query=limit"`
	Offset int32  `in:"query=offset"`
}

type listResponse struct {
	Employees []Employee `json:"employees"`
	Total     int64      `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	input := r.Context().Value(httpin.Input).(*ListEmployeesInput)

	employees, total, err := h.employeeService.ListEmployees(r.Context(), ListEmployeesParams{
		Search: input.Search,
		Status: Status(input.Status),
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list employees"})
		return
	}
	render.JSON(w, r, listResponse{Employees: employees, Total: total})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	input := r.Context().Value(httpin.Input).(*CreateEmployeeInput)

	params := CreateEmployeeParams{}
	copier.Copy(&params, input.Payload)

	created, err := h.employeeService.CreateEmployee(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid employee id"})
		return
	}

	e, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, e)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid employee id"})
		return
	}
	input := r.Context().Value(httpin.Input).(*UpdateEmployeeInput)

	params := UpdateEmployeeParams{ID: id}
	copier.Copy(&params, input.Payload)

	updated, err := h.employeeService.UpdateEmployee(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

func (h *Handler) handleExit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid employee id"})
		return
	}

	if err := h.employeeService.MarkExited(r.Context(), id, time.Now().UTC()); err != nil {
		h.renderError(w, r, err)
		return
	}
	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "Employee not found"})
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrMissingEmail), errors.Is(err, ErrMissingDates):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
