// Contract HTTP handlers.
//
// This file exposes REST endpoints for contract resources:
//   - GET    /contracts         (list, fresh statuses)
//   - POST   /contracts         (create)
//   - GET    /contracts/:id     (fetch)
//   - PUT    /contracts/:id     (partial merge)
//   - DELETE /contracts/:id     (idempotent delete)
//   - POST   /search            (case-insensitive search)
//   - GET    /alerts            (expiry alerts)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/services"
	"github.com/rsinha/go-contract-desk/internal/store"
)

// ContractService defines the contract operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor
// the provided context.
type ContractService interface {
	List(ctx context.Context) ([]domain.Contract, error)
	Get(ctx context.Context, id int) (*domain.Contract, error)
	Create(ctx context.Context, c domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, id int, upd domain.ContractUpdate) (*domain.Contract, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]domain.Contract, error)
	Alerts(ctx context.Context) ([]domain.Alert, error)
}

//
// DTOs
//

// CreateContractRequest is the JSON payload for creating a contract.
// Title, company, client name, and both dates are required.
type CreateContractRequest struct {
	Title        string  `json:"title" example:"Quality Assurance"`
	Company      string  `json:"company" example:"Acme Pvt Ltd"`
	ClientName   string  `json:"client_name" example:"Priya Sharma"`
	ContractType string  `json:"contract_type" example:"individual"`
	StartDate    string  `json:"start_date" example:"2025-01-01"`
	EndDate      string  `json:"end_date" example:"2025-12-31"`
	Salary       float64 `json:"salary" example:"1200000"`
	Notes        string  `json:"notes" example:"Renewal expected"`
}

// SearchRequest is the JSON payload for contract search.
type SearchRequest struct {
	Query string `json:"query" example:"quality"`
}

// CreateContractResponse wraps a newly created contract.
type CreateContractResponse struct {
	Message  string           `json:"message" example:"contract created"`
	Contract *domain.Contract `json:"contract"`
	Success  bool             `json:"success" example:"true"`
}

// ListContractsResponse wraps the full collection.
type ListContractsResponse struct {
	Contracts []domain.Contract `json:"contracts"`
}

// SearchResponse wraps search results with their count.
type SearchResponse struct {
	Results []domain.Contract `json:"results"`
	Count   int               `json:"count"`
}

// AlertsResponse wraps generated alerts with their count.
type AlertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
	Count  int            `json:"count"`
}

// DeleteResponse acknowledges a delete, which succeeds whether or not
// the id existed.
type DeleteResponse struct {
	Message string `json:"message" example:"contract deleted"`
	Success bool   `json:"success" example:"true"`
}

// contractID parses the :id path parameter. ok is false when the
// parameter is not an integer; the 400 has already been written.
func contractID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "contract id must be an integer")
		return 0, false
	}
	return id, true
}

// ListContracts godoc
// @ID          listContracts
// @Summary     List all contracts
// @Description Returns every contract with its freshly derived status.
// @Tags        Contracts
// @Produce     json
// @Success     200  {object}  handlers.ListContractsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts [get]
func (h *Handlers) ListContracts(c *gin.Context) {
	contracts, err := h.contractSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ListContractsResponse{Contracts: contracts})
}

// CreateContract godoc
// @ID          createContract
// @Summary     Create a contract
// @Description Creates a contract; title, company, client_name, start_date, and end_date are required.
// @Tags        Contracts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateContractRequest  true  "Contract payload"
// @Success     201  {object}  handlers.CreateContractResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts [post]
func (h *Handlers) CreateContract(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	created, err := h.contractSvc.Create(c.Request.Context(), domain.Contract{
		Title:        req.Title,
		Company:      req.Company,
		ClientName:   req.ClientName,
		ContractType: req.ContractType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Salary:       req.Salary,
		Notes:        req.Notes,
	})
	if err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			fail(c, http.StatusBadRequest, ErrCodeValidation, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, CreateContractResponse{
		Message:  "contract created",
		Contract: created,
		Success:  true,
	})
}

// GetContract godoc
// @ID          getContract
// @Summary     Fetch a contract
// @Tags        Contracts
// @Produce     json
// @Param       id  path  int  true  "Contract ID"
// @Success     200  {object}  domain.Contract
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Contract not found"
// @Router      /contracts/{id} [get]
func (h *Handlers) GetContract(c *gin.Context) {
	id, valid := contractID(c)
	if !valid {
		return
	}
	contract, err := h.contractSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrContractNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contract not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, contract)
}

// UpdateContract godoc
// @ID          updateContract
// @Summary     Update a contract
// @Description Merges the supplied fields over the stored record and re-derives the status.
// @Tags        Contracts
// @Accept      json
// @Produce     json
// @Param       id    path  int                    true  "Contract ID"
// @Param       body  body  domain.ContractUpdate  true  "Fields to merge"
// @Success     200  {object}  domain.Contract
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Contract not found"
// @Router      /contracts/{id} [put]
func (h *Handlers) UpdateContract(c *gin.Context) {
	id, valid := contractID(c)
	if !valid {
		return
	}
	var upd domain.ContractUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	contract, err := h.contractSvc.Update(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, services.ErrContractNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "contract not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, contract)
}

// DeleteContract godoc
// @ID          deleteContract
// @Summary     Delete a contract
// @Description Removes a contract. Deleting an unknown id is not an error.
// @Tags        Contracts
// @Produce     json
// @Param       id  path  int  true  "Contract ID"
// @Success     200  {object}  handlers.DeleteResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts/{id} [delete]
func (h *Handlers) DeleteContract(c *gin.Context) {
	id, valid := contractID(c)
	if !valid {
		return
	}
	if err := h.contractSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, DeleteResponse{Message: "contract deleted", Success: true})
}

// SearchContracts godoc
// @ID          searchContracts
// @Summary     Search contracts
// @Description Case-insensitive substring match against title, company, client name, or status.
// @Tags        Contracts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SearchRequest  true  "Search payload"
// @Success     200  {object}  handlers.SearchResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /search [post]
func (h *Handlers) SearchContracts(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	results, err := h.contractSvc.Search(c.Request.Context(), req.Query)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}

// ListAlerts godoc
// @ID          listAlerts
// @Summary     List expiry alerts
// @Description Returns one alert per contract whose derived status is expiring or expired.
// @Tags        Alerts
// @Produce     json
// @Success     200  {object}  handlers.AlertsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /alerts [get]
func (h *Handlers) ListAlerts(c *gin.Context) {
	alerts, err := h.contractSvc.Alerts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, AlertsResponse{Alerts: alerts, Count: len(alerts)})
}
