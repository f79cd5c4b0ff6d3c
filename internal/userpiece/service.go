package userpiece

import (
	"fmt"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

type Service interface {
	ListMine(userID int64) ([]View, error)
	Add(userID int64, in MutateReq) (*UserPiece, error)
	Update(userID int64, in MutateReq) (*UserPiece, error)
	Remove(userID int64, boardID, pieceID int64) error
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) ListMine(userID int64) ([]View, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Add(userID int64, in MutateReq) (*UserPiece, error) {
	if _, err := s.repo.Get(userID, in.BoardID, in.PieceID); err == nil {
		return nil, fmt.Errorf("%w: you already have this piece", httpx.ErrInvalid)
	} else if !IsNotFound(err) {
		return nil, err
	}
	up := &UserPiece{
		UserID:        userID,
		BoardID:       in.BoardID,
		PieceID:       in.PieceID,
		CityAcquired:  in.CityAcquired,
		StateAcquired: in.StateAcquired,
	}
	if err := s.repo.Create(up); err != nil {
		return nil, err
	}
	return up, nil
}

func (s *service) Update(userID int64, in MutateReq) (*UserPiece, error) {
	up, err := s.repo.Get(userID, in.BoardID, in.PieceID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: piece not in collection", httpx.ErrNotFound)
		}
		return nil, err
	}
	up.CityAcquired = in.CityAcquired
	up.StateAcquired = in.StateAcquired
	if err := s.repo.Update(up); err != nil {
		return nil, err
	}
	return up, nil
}

func (s *service) Remove(userID int64, boardID, pieceID int64) error {
	if _, err := s.repo.Get(userID, boardID, pieceID); err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: piece not in collection", httpx.ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(userID, boardID, pieceID)
}
