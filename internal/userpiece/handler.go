package userpiece

import (
	"fmt"
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

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) error {
	ext := r.URL.Query().Get("actor")
	if ext == "" {
		return fmt.Errorf("%w: actor is required", httpx.ErrInvalid)
	}
	u, err := h.users.ResolveExternal(ext)
	if err != nil {
		return err
	}
	out, err := h.svc.ListMine(u.ID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) error {
	u, in, err := h.authedReq(r)
	if err != nil {
		return err
	}
	up, err := h.svc.Add(u.ID, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "Piece added successfully", "data": up}, http.StatusCreated)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	u, in, err := h.authedReq(r)
	if err != nil {
		return err
	}
	up, err := h.svc.Update(u.ID, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "Piece updated successfully", "data": up}, http.StatusOK)
	return nil
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) error {
	u, in, err := h.authedReq(r)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(u.ID, in.BoardID, in.PieceID); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"message": "Piece deleted successfully"}, http.StatusOK)
	return nil
}

func (h *Handler) authedReq(r *http.Request) (*user.User, MutateReq, error) {
	var in MutateReq
	sub, err := httpx.SubjectFromCtx(r)
	if err != nil {
		return nil, in, err
	}
	u, err := h.users.ResolveExternal(sub)
	if err != nil {
		return nil, in, err
	}
	in, err = httpx.Decode[MutateReq](r)
	if err != nil {
		return nil, in, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, in, err
	}
	return u, in, nil
}
