package message

import (
	"net/http"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/validate"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/user"
)

type Handler struct {
	svc   Service
	users user.Service
}

func NewHandler(s Service, users user.Service) *Handler {
	return &Handler{svc: s, users: users}
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) error {
	sub, err := httpx.SubjectFromCtx(r)
	if err != nil {
		return err
	}
	sender, err := h.users.ResolveExternal(sub)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[SendReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	m, err := h.svc.Send(sender.ID, in.ChatID, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, m, http.StatusCreated)
	return nil
}
