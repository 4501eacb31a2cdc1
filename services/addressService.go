package services

import (
	"context"
	"errors"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddressService owns the user's address set. The single-default
// invariant is procedural: every write path that sets Is_default clears
// the other defaults first, inside one transaction, serialized per user.
type AddressService struct {
	addresses repositories.AddressRepository
	tx        database.TxRunner
	locks     *userLocks
}

func NewAddressService(addresses repositories.AddressRepository, tx database.TxRunner) *AddressService {
	return &AddressService{addresses: addresses, tx: tx, locks: newUserLocks()}
}

// Save inserts a new address (empty Address_id) or updates an existing
// one. When the address is marked default, every other default for the
// user is cleared first in the same transaction. Updating an address
// that does not exist, or belongs to another user, fails with
// ErrNotFound.
func (s *AddressService) Save(ctx context.Context, address *models.Address) error {
	s.locks.lock(address.User_id)
	defer s.locks.unlock(address.User_id)

	address.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	isNew := address.Address_id == ""
	if isNew {
		address.ID = primitive.NewObjectID()
		address.Address_id = address.ID.Hex()
		address.Created_at = address.Updated_at
	} else {
		current, err := s.addresses.GetByID(ctx, address.Address_id)
		if err != nil {
			return err
		}
		if current.User_id != address.User_id {
			return repositories.ErrNotFound
		}
		address.ID = current.ID
		address.Created_at = current.Created_at
	}

	write := func(ctx context.Context) error {
		if isNew {
			return s.addresses.Insert(ctx, address)
		}
		return s.addresses.Update(ctx, address)
	}

	if !address.Is_default {
		return write(ctx)
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.addresses.ClearDefaults(ctx, address.User_id); err != nil {
			return err
		}
		return write(ctx)
	})
}

// SetDefault makes the given address the user's only default. A missing
// address id is a silent no-op: the caller may be acting on stale state
// and there is nothing sensible to report. Another user's address is
// treated the same as a missing one.
func (s *AddressService) SetDefault(ctx context.Context, addressId string, userId string) error {
	s.locks.lock(userId)
	defer s.locks.unlock(userId)

	address, err := s.addresses.GetByID(ctx, addressId)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if address.User_id != userId {
		return nil
	}

	address.Is_default = true
	address.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.addresses.ClearDefaults(ctx, userId); err != nil {
			return err
		}
		return s.addresses.Update(ctx, address)
	})
}

// Delete removes an address owned by the user. No other address is
// promoted to default; having no default is a valid state.
func (s *AddressService) Delete(ctx context.Context, addressId string, userId string) error {
	address, err := s.addresses.GetByID(ctx, addressId)
	if err != nil {
		return err
	}
	if address.User_id != userId {
		return repositories.ErrNotFound
	}
	return s.addresses.Delete(ctx, addressId)
}

func (s *AddressService) ListByUser(ctx context.Context, userId string) ([]models.Address, error) {
	return s.addresses.ListByUser(ctx, userId)
}

func (s *AddressService) GetByID(ctx context.Context, addressId string) (*models.Address, error) {
	return s.addresses.GetByID(ctx, addressId)
}

func (s *AddressService) GetDefault(ctx context.Context, userId string) (*models.Address, error) {
	return s.addresses.GetDefault(ctx, userId)
}

func (s *AddressService) DeleteAllByUser(ctx context.Context, userId string) error {
	s.locks.lock(userId)
	defer s.locks.unlock(userId)
	return s.addresses.DeleteAllByUser(ctx, userId)
}
