//go:build unit

package commands_test

import (
	"context"
	"slices"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/infra"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/usecase/shared"
)

// memStore is an in-memory ledger. fakeUoW restores it on any error so tests
// can assert that failed units of work leave no trace.
type memStore struct {
	nextID       int64
	users        map[int64]shared.UserSnapshot
	pharmacies   map[int64]shared.PharmacySnapshot
	masks        map[int64]shared.MaskSnapshot
	hours        []pharmacyHour
	transactions []shared.TransactionSnapshot
	lockedOrder  []int64
}

type pharmacyHour struct {
	PharmacyID int64
	Hour       pharmacy.OpeningHour
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     100,
		users:      map[int64]shared.UserSnapshot{},
		pharmacies: map[int64]shared.PharmacySnapshot{},
		masks:      map[int64]shared.MaskSnapshot{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) clone() *memStore {
	c := *s
	c.users = make(map[int64]shared.UserSnapshot, len(s.users))
	for k, v := range s.users {
		c.users[k] = v
	}
	c.pharmacies = make(map[int64]shared.PharmacySnapshot, len(s.pharmacies))
	for k, v := range s.pharmacies {
		c.pharmacies[k] = v
	}
	c.masks = make(map[int64]shared.MaskSnapshot, len(s.masks))
	for k, v := range s.masks {
		c.masks[k] = v
	}
	c.hours = slices.Clone(s.hours)
	c.transactions = slices.Clone(s.transactions)
	c.lockedOrder = slices.Clone(s.lockedOrder)
	return &c
}

func (s *memStore) addUser(id int64, name, balance string) {
	s.users[id] = shared.UserSnapshot{ID: id, Name: name, Balance: ledger.MustMoney(balance)}
}

func (s *memStore) addPharmacy(id int64, name, balance string) {
	s.pharmacies[id] = shared.PharmacySnapshot{ID: id, Name: name, Balance: ledger.MustMoney(balance)}
}

func (s *memStore) addMask(id, pharmacyID int64, name, price string) {
	s.masks[id] = shared.MaskSnapshot{ID: id, PharmacyID: pharmacyID, Name: name, Price: ledger.MustMoney(price)}
}

type fakeUoW struct {
	store *memStore
	// err, when set, is returned by Within after fn succeeds (e.g. a commit conflict).
	err error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	saved := u.store.clone()
	err := fn(ctx, &fakeTx{s: u.store})
	if err == nil {
		err = u.err
	}
	if err != nil {
		*u.store = *saved
	}
	return err
}

type fakeTx struct {
	s *memStore
}

func (t *fakeTx) Users() shared.UserRepository { return fakeUsers{t.s} }
func (t *fakeTx) Pharmacies() shared.PharmacyRepository { return fakePharmacies{t.s} }
func (t *fakeTx) Masks() shared.MaskRepository { return fakeMasks{t.s} }
func (t *fakeTx) OpeningHours() shared.OpeningHourRepository { return fakeHours{t.s} }
func (t *fakeTx) Transactions() shared.TransactionRepository { return fakeTransactions{t.s} }
func (t *fakeTx) Reads() shared.CommandReads { return fakeReads{t.s} }
func (t *fakeTx) DB() sqlc.DBTX { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUsers struct{ s *memStore }

func (r fakeUsers) LockByID(_ context.Context, _ sqlc.DBTX, id int64) (*shared.UserSnapshot, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return &u, nil
}

func (r fakeUsers) Debit(_ context.Context, _ sqlc.DBTX, id int64, amount ledger.Money) error {
	u, ok := r.s.users[id]
	if !ok {
		return notFound("user not found")
	}
	balance, err := u.Balance.Sub(amount)
	if err != nil {
		return infra.WrapRepoErr("user balance debit rejected", err, infra.KindCheckViolated)
	}
	u.Balance = balance
	r.s.users[id] = u
	return nil
}

func (r fakeUsers) Create(_ context.Context, _ sqlc.DBTX, name string, balance ledger.Money) (int64, error) {
	id := r.s.id()
	r.s.users[id] = shared.UserSnapshot{ID: id, Name: name, Balance: balance}
	return id, nil
}

type fakePharmacies struct{ s *memStore }

func (r fakePharmacies) LockByIDs(_ context.Context, _ sqlc.DBTX, ids []int64) ([]*shared.PharmacySnapshot, error) {
	out := make([]*shared.PharmacySnapshot, 0, len(ids))
	for _, id := range ids {
		p, ok := r.s.pharmacies[id]
		if !ok {
			return nil, notFound("pharmacy not found")
		}
		r.s.lockedOrder = append(r.s.lockedOrder, id)
		out = append(out, &p)
	}
	return out, nil
}

func (r fakePharmacies) Credit(_ context.Context, _ sqlc.DBTX, id int64, amount ledger.Money) error {
	p, ok := r.s.pharmacies[id]
	if !ok {
		return notFound("pharmacy not found")
	}
	p.Balance = p.Balance.Add(amount)
	r.s.pharmacies[id] = p
	return nil
}

func (r fakePharmacies) Create(_ context.Context, _ sqlc.DBTX, name string, balance ledger.Money) (int64, error) {
	for _, p := range r.s.pharmacies {
		if p.Name == name {
			return 0, infra.WrapRepoErr("failed to create pharmacy", nil, infra.KindDuplicateKey)
		}
	}
	id := r.s.id()
	r.s.pharmacies[id] = shared.PharmacySnapshot{ID: id, Name: name, Balance: balance}
	return id, nil
}

type fakeMasks struct{ s *memStore }

func (r fakeMasks) Create(_ context.Context, _ sqlc.DBTX, pharmacyID int64, name string, price ledger.Money) (int64, error) {
	id := r.s.id()
	r.s.masks[id] = shared.MaskSnapshot{ID: id, PharmacyID: pharmacyID, Name: name, Price: price}
	return id, nil
}

type fakeHours struct{ s *memStore }

func (r fakeHours) Create(_ context.Context, _ sqlc.DBTX, pharmacyID int64, hour pharmacy.OpeningHour) error {
	r.s.hours = append(r.s.hours, pharmacyHour{PharmacyID: pharmacyID, Hour: hour})
	return nil
}

type fakeTransactions struct{ s *memStore }

func (r fakeTransactions) Create(_ context.Context, _ sqlc.DBTX, t shared.NewTransaction) (*shared.TransactionSnapshot, error) {
	snap := shared.TransactionSnapshot{
		ID:         r.s.id(),
		UserID:     t.UserID,
		PharmacyID: t.PharmacyID,
		MaskID:     t.MaskID,
		Date:       t.Date,
		Amount:     t.Amount,
	}
	r.s.transactions = append(r.s.transactions, snap)
	return &snap, nil
}

type fakeReads struct{ s *memStore }

func (r fakeReads) MaskByID(_ context.Context, id int64) (*shared.MaskSnapshot, error) {
	m, ok := r.s.masks[id]
	if !ok {
		return nil, notFound("mask not found")
	}
	return &m, nil
}

func (r fakeReads) PharmacyByName(_ context.Context, name string) (*shared.PharmacySnapshot, error) {
	for _, p := range r.s.pharmacies {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, notFound("pharmacy not found")
}

func (r fakeReads) MaskByPharmacyAndName(_ context.Context, pharmacyID int64, name string) (*shared.MaskSnapshot, error) {
	for _, m := range r.s.masks {
		if m.PharmacyID == pharmacyID && m.Name == name {
			return &m, nil
		}
	}
	return nil, notFound("mask not found")
}
