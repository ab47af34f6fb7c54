package httpserver

import (
	"errors"

	"github.com/AccountHub/backend/adapters/httpserver/model"
	"github.com/AccountHub/backend/domain/account"
	"github.com/AccountHub/backend/pkg/apperror"
	"github.com/AccountHub/backend/pkg/mycontext"
	"github.com/AccountHub/backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateAccount godoc
// @Summary Create account
// @Description Create account
// @Tags account
// @Accept json
// @Produce json
// @Param payload body model.CreateAccountRequest true "Create account request"
// @Success 200 {object} model.SuccessResponse{data=model.CreateAccountResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /accounts [post]
func (s *Server) CreateAccount(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CreateAccountRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	if _, err := s.AccountStore.GetByEmail(ctx, req.Email); err == nil {
		return s.error(c, apperror.ErrAlreadyExists(errors.New("email already in use")))
	} else if !errors.Is(err, account.ErrAccountNotFound) {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	acct := account.NewAccount(req.Name, req.Email)

	changes := s.ChangeSets.NewChangeSet()
	changes.Insert(acct)

	if err := s.UnitOfWork.Commit(ctx, changes); err != nil {
		// a concurrent create may slip past the lookup above and trip the
		// unique constraint instead
		if errors.Is(err, account.ErrEmailTaken) {
			return s.error(c, apperror.ErrAlreadyExists(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.CreateAccountResponse{ID: acct.ID.String()})
}

// GetAccount godoc
// @Summary Get account
// @Description Get account by id
// @Tags account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} model.SuccessResponse{data=account.Account}
// @Failure 404 {object} model.ErrorResponse
// @Router /accounts/{id} [get]
func (s *Server) GetAccount(c echo.Context) error {
	ctx := mycontext.NewEchoContextAdapter(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	acct, err := s.AccountStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, acct)
}

// ListAccounts godoc
// @Summary List accounts
// @Description List accounts
// @Tags account
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse
// @Router /accounts [get]
func (s *Server) ListAccounts(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ListAccountsRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	pager := pagination.NewPager(req.Page, req.Limit)

	accounts, err := s.AccountStore.List(ctx, pager)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, map[string]interface{}{
		"accounts": accounts,
		"pager":    pager,
	})
}

// ChangeAccountEmail godoc
// @Summary Change account email
// @Description Change account email
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param payload body model.ChangeEmailRequest true "Change email request"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /accounts/{id}/email [patch]
func (s *Server) ChangeAccountEmail(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ChangeEmailRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	acct, err := s.AccountStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if err := acct.ChangeEmail(req.Email); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	changes := s.ChangeSets.NewChangeSet()
	changes.Update(acct)

	if err := s.UnitOfWork.Commit(ctx, changes); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, nil)
}

// SuspendAccount godoc
// @Summary Suspend account
// @Description Suspend account
// @Tags account
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /accounts/{id}/suspend [post]
func (s *Server) SuspendAccount(c echo.Context) error {
	ctx := mycontext.NewEchoContextAdapter(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	acct, err := s.AccountStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if err := acct.Suspend(); err != nil {
		return s.error(c, apperror.ErrConflict(err))
	}

	changes := s.ChangeSets.NewChangeSet()
	changes.Update(acct)

	if err := s.UnitOfWork.Commit(ctx, changes); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, nil)
}

func (s *Server) RegisterAccountRoutes(router *echo.Group) {
	router.POST("", s.CreateAccount)
	router.GET("", s.ListAccounts)
	router.GET("/:id", s.GetAccount)
	router.PATCH("/:id/email", s.ChangeAccountEmail)
	router.POST("/:id/suspend", s.SuspendAccount)
}
