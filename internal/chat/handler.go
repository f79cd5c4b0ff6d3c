package chat

import (
	"fmt"
	"net/http"
	"strconv"

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

// actor resolves the external identity from the actor query parameter to an
// internal user. Unknown actors are 404, missing ones 400.
func (h *Handler) actor(r *http.Request) (*user.User, error) {
	ext := r.URL.Query().Get("actor")
	if ext == "" {
		return nil, fmt.Errorf("%w: actor is required", httpx.ErrInvalid)
	}
	return h.users.ResolveExternal(ext)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) error {
	u, err := h.actor(r)
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	u, err := h.users.ResolveExternal(in.Actor)
	if err != nil {
		return err
	}
	if _, err := h.users.GetByID(in.TargetUserID); err != nil {
		return err
	}
	out, err := h.svc.GetOrCreate(u.ID, in.TargetUserID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	u, err := h.actor(r)
	if err != nil {
		return err
	}
	chatID, err := strconv.ParseInt(r.PathValue("chat_id"), 10, 64)
	if err != nil || chatID <= 0 {
		return fmt.Errorf("%w: bad chat id", httpx.ErrInvalid)
	}
	out, err := h.svc.GetDetail(u.ID, chatID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}
