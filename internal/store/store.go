package store

import (
	"sync"

	"github.com/ebtesamty/dashboard-api/internal/model"
)

// Store owns the denormalized record collections backing the dashboard.
// It is a plain value handed into the report and registry services; there is
// no package-level instance, so tests can run against independent stores.
//
// The four mutable collections (Patients, Appointments, Inventory,
// Transactions) are ordered append-only slices with no indexing. Branches
// and Users are static for the lifetime of the process. The persistence
// mirror may replace the mutable collections wholesale at startup.
//
// Mutations arrive on handler goroutines while the refresh worker and read
// handlers iterate the same slices, so every access goes through the
// embedded lock: writers (registry appends, mirror load) take Lock, readers
// (report queries, mirror save) take RLock. Callers must not nest
// acquisitions.
type Store struct {
	sync.RWMutex

	Branches     []model.Branch
	Users        []model.User
	Patients     []model.Patient
	Appointments []model.Appointment
	Inventory    []model.InventoryItem
	Transactions []model.Transaction
}

// New returns a store populated with the seed records.
func New() *Store {
	s := NewEmpty()
	seed(s)
	return s
}

// NewEmpty returns a store with the static branch and user lists but no
// records.
func NewEmpty() *Store {
	return &Store{
		Branches: seedBranches(),
		Users:    seedUsers(),
	}
}

// BranchByName resolves a branch display name to its record.
func (s *Store) BranchByName(name string) (model.Branch, bool) {
	for _, b := range s.Branches {
		if b.Name == name {
			return b, true
		}
	}
	return model.Branch{}, false
}

// MatchesBranch reports whether an entity's branch reference points at the
// named branch. Branch affiliation is a display-name string match throughout
// the data model; keeping the comparison here means an eventual move to
// id-based references only touches this one spot.
func (s *Store) MatchesBranch(entityBranch, branchName string) bool {
	return entityBranch == branchName
}
