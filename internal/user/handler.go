package user

import (
	"net/http"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Provision(w http.ResponseWriter, r *http.Request) error {
	sub, err := httpx.SubjectFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[ProvisionReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	u, created, err := h.svc.EnsureUser(sub, in.Username)
	if err != nil {
		return err
	}
	resp := ProvisionResp{Message: "User already exists", UserID: u.ID}
	code := http.StatusOK
	if created {
		resp.Message = "User created successfully"
		code = http.StatusCreated
	}
	httpx.WriteJSON(w, resp, code)
	return nil
}

func (h *Handler) Whoami(w http.ResponseWriter, r *http.Request) error {
	sub, err := httpx.SubjectFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.ResolveExternal(sub)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
