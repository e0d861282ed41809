package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ebtesamty/dashboard-api/internal/model"
	"github.com/ebtesamty/dashboard-api/internal/store"
	apperrors "github.com/ebtesamty/dashboard-api/pkg/errors"
	"github.com/ebtesamty/dashboard-api/pkg/logger"
)

// Slot keys, one per mutable collection.
const (
	SlotPatients     = "ebtesamty:patients"
	SlotAppointments = "ebtesamty:appointments"
	SlotInventory    = "ebtesamty:inventory"
	SlotTransactions = "ebtesamty:transactions"
)

// Mirror serializes the store's mutable collections to a key-value slot
// store and restores them at startup. It holds no copy of the data; the
// store's slices are always authoritative.
type Mirror struct {
	kv     KV
	store  *store.Store
	logger *logger.Logger
}

func NewMirror(kv KV, st *store.Store, l *logger.Logger) *Mirror {
	return &Mirror{kv: kv, store: st, logger: l}
}

// Save writes all four mutable collections, one slot each. Every call
// rewrites every slot; there is no dirty tracking. The collections are
// serialized together under the store's read lock so the slots form a
// consistent snapshot, then written without holding the lock. All slots are
// attempted even when an earlier one fails, and the first failure is
// reported as a persistence error.
func (m *Mirror) Save(ctx context.Context) error {
	slots := [4]string{SlotPatients, SlotAppointments, SlotInventory, SlotTransactions}
	var payloads [4][]byte
	var firstErr error

	m.store.RLock()
	for i, collection := range []interface{}{
		m.store.Patients, m.store.Appointments, m.store.Inventory, m.store.Transactions,
	} {
		payload, err := json.Marshal(collection)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		payloads[i] = payload
	}
	m.store.RUnlock()

	for i, slot := range slots {
		if payloads[i] == nil {
			continue
		}
		if err := m.kv.Set(ctx, slot, string(payloads[i])); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return apperrors.NewPersistence("failed to save collections", firstErr)
	}
	return nil
}

// Load restores each collection from its slot. A slot that is missing or
// unparseable leaves the corresponding seed data in place; records inside a
// parseable slot are not validated further. The store's write lock is held
// for the whole restore so readers never see a half-replaced state.
func (m *Mirror) Load(ctx context.Context) {
	m.store.Lock()
	defer m.store.Unlock()

	if raw, ok := m.fetch(ctx, SlotPatients); ok {
		var patients []model.Patient
		if err := json.Unmarshal([]byte(raw), &patients); err != nil {
			m.logger.Warn(err, "skipping unparseable slot", "slot", SlotPatients)
		} else {
			m.store.Patients = patients
		}
	}

	if raw, ok := m.fetch(ctx, SlotAppointments); ok {
		var appointments []model.Appointment
		if err := json.Unmarshal([]byte(raw), &appointments); err != nil {
			m.logger.Warn(err, "skipping unparseable slot", "slot", SlotAppointments)
		} else {
			m.store.Appointments = appointments
		}
	}

	if raw, ok := m.fetch(ctx, SlotInventory); ok {
		var inventory []model.InventoryItem
		if err := json.Unmarshal([]byte(raw), &inventory); err != nil {
			m.logger.Warn(err, "skipping unparseable slot", "slot", SlotInventory)
		} else {
			m.store.Inventory = inventory
		}
	}

	if raw, ok := m.fetch(ctx, SlotTransactions); ok {
		var transactions []model.Transaction
		if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
			m.logger.Warn(err, "skipping unparseable slot", "slot", SlotTransactions)
		} else {
			m.store.Transactions = transactions
		}
	}
}

func (m *Mirror) fetch(ctx context.Context, key string) (string, bool) {
	raw, err := m.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			m.logger.Warn(err, "failed to read slot", "slot", key)
		}
		return "", false
	}
	return raw, true
}
