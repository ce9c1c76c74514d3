// Package memrepo реализует репозитории над единственным in-memory
// хранилищем. Один логический леджер, персистентность вне скоупа сервиса.
package memrepo

import (
	"fmt"
	"sync"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	accountSeq     = "accounts"
	transactionSeq = "transactions"
	planSeq        = "plans"
	holdingSeq     = "holdings"
	commissionSeq  = "commissions"
)

// State - все данные леджера. Мутируется только через репозитории под
// блокировкой Store.
type State struct {
	Accounts       map[int64]domain.Account
	Transactions   map[int64]domain.Transaction
	Plans          map[int64]domain.Plan
	Holdings       map[int64]domain.Holding
	Commissions    map[int64]domain.ReferralCommission
	ReferralConfig domain.ReferralConfig

	sequences map[string]int64
}

func newState() *State {
	return &State{
		Accounts:     make(map[int64]domain.Account),
		Transactions: make(map[int64]domain.Transaction),
		Plans:        make(map[int64]domain.Plan),
		Holdings:     make(map[int64]domain.Holding),
		Commissions:  make(map[int64]domain.ReferralCommission),
		sequences:    make(map[string]int64),
	}
}

func (s *State) nextID(seq string) int64 {
	s.sequences[seq]++
	return s.sequences[seq]
}

func (s *State) clone() *State {
	c := newState()
	for id, account := range s.Accounts {
		c.Accounts[id] = account
	}
	for id, transaction := range s.Transactions {
		c.Transactions[id] = transaction
	}
	for id, plan := range s.Plans {
		c.Plans[id] = plan
	}
	for id, holding := range s.Holdings {
		c.Holdings[id] = holding
	}
	for id, commission := range s.Commissions {
		c.Commissions[id] = commission
	}
	c.ReferralConfig = s.ReferralConfig
	c.ReferralConfig.LevelPercentages = append(
		[]decimal.Decimal(nil),
		s.ReferralConfig.LevelPercentages...,
	)
	for seq, val := range s.sequences {
		c.sequences[seq] = val
	}
	return c
}

// Store реализует uow.Store. Блокировки выставляются юнитом работы: Do держит
// эксклюзивную блокировку на всю транзакцию, читатели ходят через RLock.
type Store struct {
	mu    sync.RWMutex
	state *State
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Lock()    { s.mu.Lock() }
func (s *Store) Unlock()  { s.mu.Unlock() }
func (s *Store) RLock()   { s.mu.RLock() }
func (s *Store) RUnlock() { s.mu.RUnlock() }

func (s *Store) State() any {
	return s.state
}

func (s *Store) Snapshot() any {
	return s.state.clone()
}

func (s *Store) Restore(snapshot any) {
	if st, ok := snapshot.(*State); ok {
		s.state = st
	}
}

func mustState(state any) *State {
	st, ok := state.(*State)
	if !ok {
		panic(fmt.Sprintf("memrepo: unexpected state type %T", state))
	}
	return st
}
