package model

import (
	"github.com/AccountHub/backend/pkg/validation"
)

type CreateAccountRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100" mod:"trim"`
	Email string `json:"email" validate:"required,email" mod:"trim,lcase"`
} // @name model.CreateAccountRequest

func (r *CreateAccountRequest) Validate() error {
	if err := validation.Conform(r); err != nil {
		return err
	}

	return validation.Validate().Struct(r)
}

type CreateAccountResponse struct {
	ID string `json:"id"`
} // @name model.CreateAccountResponse

type ChangeEmailRequest struct {
	Email string `json:"email" validate:"required,email" mod:"trim,lcase"`
} // @name model.ChangeEmailRequest

func (r *ChangeEmailRequest) Validate() error {
	if err := validation.Conform(r); err != nil {
		return err
	}

	return validation.Validate().Struct(r)
}

type ListAccountsRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
} // @name model.ListAccountsRequest
